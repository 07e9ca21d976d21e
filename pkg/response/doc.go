// Package response writes the JSON envelope used by every API endpoint:
// a flat object with the HTTP status text under "status", a human readable
// "message" and any endpoint specific members.
//
//	response.JSON(w, http.StatusOK, "User logged in successfully.", response.Fields{"user": u})
//	// {"message":"User logged in successfully.","status":"OK","user":{...}}
//
// Error maps validation errors, binder errors and HTTPError values onto
// status codes; unknown errors never leak their text to the client.
package response
