package db

const adminGetByEmailQ = `
SELECT id, name, email, password, is_active, created_at, updated_at
FROM admins
WHERE email = $1
`

const tokenCreateQ = `
INSERT INTO refresh_tokens (admin_id, token_hash, expires_at, device_id)
VALUES ($1, $2, $3, $4)
`

const isValidTokenQ = `
SELECT token_hash
FROM refresh_tokens
WHERE admin_id = $1
  AND device_id = $2
  AND revoked = FALSE
  AND expires_at > NOW()
ORDER BY created_at DESC
LIMIT 1
`

const revokeAllTokensQ = `
UPDATE refresh_tokens
SET revoked = TRUE
WHERE admin_id = $1 AND revoked = FALSE
`
