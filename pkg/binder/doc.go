// Package binder decodes HTTP request bodies into typed request structs.
//
//	var req LoginRequest
//	if err := binder.JSON(w, r, &req); err != nil {
//		// errors.Is(err, binder.ErrInvalidJSON) and friends
//	}
package binder
