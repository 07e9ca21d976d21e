// Package jwt issues and verifies short-lived HS256 JSON Web Tokens on top of
// github.com/golang-jwt/jwt/v5.
//
// Only HS256 is ever signed or accepted; tokens announcing any other
// algorithm, including "none", fail with ErrUnexpectedSigningMethod. Every
// token must carry an exp claim.
//
//	svc, err := jwt.NewFromString(secret)
//	if err != nil {
//		return err
//	}
//
//	type emailClaims struct {
//		Email string `json:"email"`
//		jwt.RegisteredClaims
//	}
//
//	token, err := svc.Generate(emailClaims{Email: "a@b.c", RegisteredClaims: svc.Expiry(15 * time.Minute)})
//
//	var parsed emailClaims
//	switch err := svc.Parse(token, &parsed); {
//	case errors.Is(err, jwt.ErrExpiredToken):
//		// ask for a new link
//	case err != nil:
//		// reject
//	}
package jwt
