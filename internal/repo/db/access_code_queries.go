package db

const accessCodeColumns = `
	a.id,
	a.code,
	a.student_name,
	a.phone_number,
	a.category,
	a.allowed_sections,
	a.is_active,
	a.expiry_date,
	a.device_id,
	a.device_info,
	a.session_token,
	a.session_expiry,
	a.force_reauth,
	a.login_count,
	a.reset_count,
	a.last_login_at,
	a.created_at,
	a.updated_at
`

const accessCodeGetByIDQ = `
SELECT ` + accessCodeColumns + `
FROM access_codes a
WHERE a.id = $1
`

const accessCodeGetByCodeQ = `
SELECT ` + accessCodeColumns + `
FROM access_codes a
WHERE a.code = $1
`

const accessCodeCreateQ = `
INSERT INTO access_codes (
	code,
	student_name,
	phone_number,
	category,
	allowed_sections,
	is_active,
	expiry_date,
	session_token,
	session_expiry
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`

const accessCodeUpdateQ = `
UPDATE access_codes
SET student_name     = $1,
	phone_number     = $2,
	category         = $3,
	allowed_sections = $4,
	expiry_date      = $5,
	is_active        = $6,
	updated_at       = NOW()
WHERE id = $7
`

const accessCodeSetActiveQ = `
UPDATE access_codes
SET is_active  = $1,
	updated_at = NOW()
WHERE id = $2
`

const accessCodeDeleteQ = `
DELETE FROM access_codes
WHERE id = $1
`

// The device predicate makes the first bind atomic: two racing first
// logins cannot both pass it, the loser updates zero rows.
const accessCodeBindDeviceQ = `
UPDATE access_codes
SET device_id      = $2,
	device_info    = $3,
	session_token  = $4,
	session_expiry = $5,
	force_reauth   = FALSE,
	login_count    = login_count + 1,
	last_login_at  = $6,
	updated_at     = NOW()
WHERE id = $1
  AND (device_id IS NULL OR device_id = $2)
`

const accessCodeExistsQ = `
SELECT EXISTS (SELECT 1 FROM access_codes WHERE id = $1)
`

const accessCodeResetDeviceQ = `
UPDATE access_codes
SET device_id      = NULL,
	device_info    = NULL,
	last_login_at  = NULL,
	session_token  = $2,
	session_expiry = $3,
	force_reauth   = TRUE,
	reset_count    = reset_count + 1,
	updated_at     = NOW()
WHERE id = $1
`
