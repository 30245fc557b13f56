// Package postgres implements the PostgreSQL persistence layer for the
// mentoria platform.
package postgres

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 001: ACCOUNTS AND PROFILES
// ══════════════════════════════════════════════════════════════════════════════

const migration001Up = `
-- Migration: Create accounts, universities, and role linkage tables
-- Version: 001

CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    full_name VARCHAR(150) NOT NULL,
    cpf VARCHAR(14) NOT NULL DEFAULT '',
    email VARCHAR(255) NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    birth_date DATE,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

CREATE TABLE IF NOT EXISTS universities (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name VARCHAR(255) NOT NULL
);

-- Role linkage tables. A user's role is resolved by probing these in
-- priority order: admin, coordinator, mentor, mentee.
CREATE TABLE IF NOT EXISTS admins (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS coordinators (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
    university_id UUID REFERENCES universities(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS mentors (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
    university_id UUID REFERENCES universities(id) ON DELETE SET NULL,
    linkedin VARCHAR(255) NOT NULL DEFAULT '',
    education VARCHAR(255) NOT NULL DEFAULT '',
    current_title VARCHAR(255) NOT NULL DEFAULT '',
    areas_of_activity TEXT NOT NULL DEFAULT '',
    competencies TEXT[] NOT NULL DEFAULT '{}',
    hobbies TEXT[] NOT NULL DEFAULT '{}',
    photo_url TEXT NOT NULL DEFAULT '',
    active BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_mentors_user_id ON mentors(user_id);
CREATE INDEX IF NOT EXISTS idx_mentors_active ON mentors(active) WHERE active;
CREATE INDEX IF NOT EXISTS idx_mentors_university ON mentors(university_id) WHERE university_id IS NOT NULL;

CREATE TABLE IF NOT EXISTS mentees (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
    university_id UUID REFERENCES universities(id) ON DELETE SET NULL,
    linkedin VARCHAR(255) NOT NULL DEFAULT '',
    course VARCHAR(255) NOT NULL,
    course_year INTEGER NOT NULL DEFAULT 0,
    semester INTEGER NOT NULL DEFAULT 0,
    objective TEXT NOT NULL DEFAULT '',
    competencies TEXT[] NOT NULL DEFAULT '{}',
    hobbies TEXT[] NOT NULL DEFAULT '{}',
    photo_url TEXT NOT NULL DEFAULT '',
    active BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_mentees_user_id ON mentees(user_id);
CREATE INDEX IF NOT EXISTS idx_mentees_active ON mentees(active) WHERE active;
CREATE INDEX IF NOT EXISTS idx_mentees_university ON mentees(university_id) WHERE university_id IS NOT NULL;
`

const migration001Down = `
DROP TABLE IF EXISTS mentees;
DROP TABLE IF EXISTS mentors;
DROP TABLE IF EXISTS coordinators;
DROP TABLE IF EXISTS admins;
DROP TABLE IF EXISTS universities;
DROP TABLE IF EXISTS users;
`

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 002: MATCHING
// ══════════════════════════════════════════════════════════════════════════════

const migration002Up = `
-- Migration: Create match requests and mentorships
-- Version: 002

CREATE TABLE IF NOT EXISTS match_requests (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    mentor_id UUID NOT NULL REFERENCES mentors(id) ON DELETE CASCADE,
    mentee_id UUID NOT NULL REFERENCES mentees(id) ON DELETE CASCADE,
    state VARCHAR(20) NOT NULL DEFAULT 'pending',
    score INTEGER NOT NULL DEFAULT 0,
    evidence TEXT[] NOT NULL DEFAULT '{}',
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_request_state CHECK (state IN ('pending', 'accepted', 'rejected')),
    CONSTRAINT valid_score CHECK (score >= 0)
);

CREATE INDEX IF NOT EXISTS idx_match_requests_mentor ON match_requests(mentor_id);
CREATE INDEX IF NOT EXISTS idx_match_requests_mentee ON match_requests(mentee_id);
CREATE INDEX IF NOT EXISTS idx_match_requests_state ON match_requests(state) WHERE state = 'pending';

-- At most one pending request per participant, enforced at the storage
-- level so concurrent creates cannot double-book.
CREATE UNIQUE INDEX IF NOT EXISTS uniq_pending_request_mentor
    ON match_requests(mentor_id) WHERE state = 'pending';
CREATE UNIQUE INDEX IF NOT EXISTS uniq_pending_request_mentee
    ON match_requests(mentee_id) WHERE state = 'pending';

CREATE TABLE IF NOT EXISTS mentorships (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    mentor_id UUID NOT NULL REFERENCES mentors(id) ON DELETE CASCADE,
    mentee_id UUID NOT NULL REFERENCES mentees(id) ON DELETE CASCADE,
    state VARCHAR(20) NOT NULL DEFAULT 'active',
    started_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    ended_at TIMESTAMP WITH TIME ZONE,
    mentor_rating INTEGER,
    mentee_rating INTEGER,
    mentor_evaluation TEXT NOT NULL DEFAULT '',
    mentee_evaluation TEXT NOT NULL DEFAULT '',

    CONSTRAINT valid_mentorship_state CHECK (state IN ('active', 'concluded', 'cancelled')),
    CONSTRAINT valid_mentor_rating CHECK (mentor_rating IS NULL OR (mentor_rating >= 1 AND mentor_rating <= 5)),
    CONSTRAINT valid_mentee_rating CHECK (mentee_rating IS NULL OR (mentee_rating >= 1 AND mentee_rating <= 5))
);

CREATE INDEX IF NOT EXISTS idx_mentorships_mentor ON mentorships(mentor_id);
CREATE INDEX IF NOT EXISTS idx_mentorships_mentee ON mentorships(mentee_id);

-- At most one active mentorship per participant.
CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_mentorship_mentor
    ON mentorships(mentor_id) WHERE state = 'active';
CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_mentorship_mentee
    ON mentorships(mentee_id) WHERE state = 'active';
`

const migration002Down = `
DROP TABLE IF EXISTS mentorships;
DROP TABLE IF EXISTS match_requests;
`

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 003: ENGAGEMENT RECORDS
// ══════════════════════════════════════════════════════════════════════════════

const migration003Up = `
-- Migration: Create meetings, upcoming meetings, and certificates
-- Version: 003

CREATE TABLE IF NOT EXISTS meetings (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    mentor_id UUID NOT NULL REFERENCES mentors(id) ON DELETE CASCADE,
    mentee_id UUID NOT NULL REFERENCES mentees(id) ON DELETE CASCADE,
    held_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    duration_min INTEGER NOT NULL DEFAULT 0,
    theme VARCHAR(255) NOT NULL DEFAULT '',
    topics TEXT NOT NULL DEFAULT '',
    progress TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',

    CONSTRAINT valid_duration CHECK (duration_min >= 0)
);

CREATE INDEX IF NOT EXISTS idx_meetings_mentor ON meetings(mentor_id);
CREATE INDEX IF NOT EXISTS idx_meetings_mentee ON meetings(mentee_id);
CREATE INDEX IF NOT EXISTS idx_meetings_held_at ON meetings(held_at DESC);

CREATE TABLE IF NOT EXISTS upcoming_meetings (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    mentor_id UUID NOT NULL REFERENCES mentors(id) ON DELETE CASCADE,
    mentee_id UUID NOT NULL REFERENCES mentees(id) ON DELETE CASCADE,
    suggested_at TIMESTAMP WITH TIME ZONE NOT NULL,
    topic VARCHAR(255) NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_upcoming_meetings_mentor ON upcoming_meetings(mentor_id);
CREATE INDEX IF NOT EXISTS idx_upcoming_meetings_mentee ON upcoming_meetings(mentee_id);

CREATE TABLE IF NOT EXISTS certificates (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    mentee_id UUID NOT NULL REFERENCES mentees(id) ON DELETE CASCADE,
    year INTEGER NOT NULL,

    CONSTRAINT valid_year CHECK (year >= 2000)
);

CREATE INDEX IF NOT EXISTS idx_certificates_mentee ON certificates(mentee_id);
`

const migration003Down = `
DROP TABLE IF EXISTS certificates;
DROP TABLE IF EXISTS upcoming_meetings;
DROP TABLE IF EXISTS meetings;
`

// GetMigrations returns all embedded migrations.
func GetMigrations() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_profiles",
			UpSQL:   migration001Up,
			DownSQL: migration001Down,
		},
		{
			Version: 2,
			Name:    "create_matching",
			UpSQL:   migration002Up,
			DownSQL: migration002Down,
		},
		{
			Version: 3,
			Name:    "create_engagement",
			UpSQL:   migration003Up,
			DownSQL: migration003Down,
		},
	}
}
