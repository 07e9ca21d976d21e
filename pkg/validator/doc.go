// Package validator builds declarative validation from small Rule values.
//
// A Rule pairs a Check func with a ValidationError carrying the field name,
// a human message and a translation key. Apply runs every rule and returns
// the failures as ValidationErrors, which implements error.
//
//	err := validator.Apply(
//		validator.Required("email", email, "Email is required"),
//		validator.ValidEmail("email", email),
//		validator.MinLen("password", password, 8, "Password"),
//		validator.HasDigit("password", password),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		writeJSON(w, http.StatusBadRequest, verrs.Map())
//	}
//
// Rules hold no state and are safe to build per request.
package validator
