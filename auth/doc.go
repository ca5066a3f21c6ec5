// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the admin API.

# Admin Keys

The admin API is protected by a single shared key, configured with
ADMIN_KEY. Requests carry it in the X-Admin-Key header:

	mux.HandleFunc("POST /admin/questions", auth.RequireAdminKey(cfg.AdminKey, h.CreateQuestion))

ValidateAdminKey hashes both keys with SHA-256 before a constant-time
comparison, so neither content nor length leaks through timing.

# Key Generation

Operators can mint a key with:

	polls -gen-admin-key

which calls GenerateAdminKey (24 random bytes, URL-safe base64).
*/
package auth
