package cookie

import "errors"

var (
	ErrSecurePrefixRequiresSecure = errors.New("cookie.secure_prefix_requires_secure")
	ErrHostPrefixRequiresSecure   = errors.New("cookie.host_prefix_requires_secure")
	ErrHostPrefixRequiresRootPath = errors.New("cookie.host_prefix_requires_root_path")
	ErrHostPrefixForbidsDomain    = errors.New("cookie.host_prefix_forbids_domain")
	ErrMaxAgeTooLarge             = errors.New("cookie.max_age_too_large")
	ErrExpiresTooFar              = errors.New("cookie.expires_too_far")
	ErrPartitionedRequiresSecure  = errors.New("cookie.partitioned_requires_secure")

	ErrInvalidName      = errors.New("cookie.invalid_name")
	ErrInvalidAttribute = errors.New("cookie.invalid_attribute")
	ErrSecretTooShort   = errors.New("cookie.secret_too_short")
	ErrInvalidSignature = errors.New("cookie.invalid_signature")
	ErrCookieNotFound   = errors.New("cookie.not_found")
)
