package db

const sectionColumns = `
	s.id,
	s.title,
	s.description,
	s.category,
	s.position,
	s.is_active,
	s.created_at,
	s.updated_at
`

const sectionGetByIDQ = `
SELECT ` + sectionColumns + `
FROM sections s
WHERE s.id = $1
`

const sectionListByIDsQ = `
SELECT ` + sectionColumns + `
FROM sections s
WHERE s.id IN (?) AND s.is_active = TRUE
ORDER BY s.position, s.created_at
`

const sectionCreateQ = `
INSERT INTO sections (title, description, category, position, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

const sectionUpdateQ = `
UPDATE sections
SET title       = $1,
	description = $2,
	category    = $3,
	position    = $4,
	is_active   = $5,
	updated_at  = NOW()
WHERE id = $6
`

const sectionDeleteQ = `
DELETE FROM sections
WHERE id = $1
`

const videoColumns = `
	v.id,
	v.section_id,
	v.title,
	v.description,
	v.embed_url,
	v.attachment,
	v.position,
	v.duration_sec,
	v.created_at,
	v.updated_at
`

const videoListBySectionQ = `
SELECT ` + videoColumns + `
FROM videos v
WHERE v.section_id = $1
ORDER BY v.position, v.created_at
`

const videoListBySectionsQ = `
SELECT ` + videoColumns + `
FROM videos v
WHERE v.section_id IN (?)
ORDER BY v.position, v.created_at
`

const videoCreateQ = `
INSERT INTO videos (section_id, title, description, embed_url, attachment, position, duration_sec)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

const videoUpdateQ = `
UPDATE videos
SET title        = $1,
	description  = $2,
	embed_url    = $3,
	attachment   = $4,
	position     = $5,
	duration_sec = $6,
	updated_at   = NOW()
WHERE id = $7
`

const videoDeleteQ = `
DELETE FROM videos
WHERE id = $1
`
