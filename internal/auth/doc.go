// Package auth provides account registration, login and session handling.
//
// It supports two authentication modes:
//   - "none": No authentication (default); every request is anonymous and the
//     sync layer only touches the local store
//   - "local": Local user database with session cookies; signed-in requests
//     carry a user identity the sync layer mirrors data for
//
// # Configuration
//
// Set AUTH_MODE environment variable to select the mode:
//
//	AUTH_MODE=none   # Default, no auth
//	AUTH_MODE=local  # Requires registration and login
//
// For local mode, additional configuration:
//
//	AUTH_SESSION_SECRET=<hex-32-bytes>  # Auto-generated if empty
//	AUTH_SESSION_LIFETIME=720h          # Session duration
//	AUTH_BCRYPT_COST=12                 # bcrypt cost factor
//	AUTH_SECURE_COOKIES=true            # HTTPS-only cookies
//
// Extract the user in handlers:
//
//	userID, ok := auth.CurrentUserID(c)
package auth
