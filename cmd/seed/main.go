package main

import (
	"context"
	"database/sql"
	"encoding/json"

	"edumarket/internal/config"
	"edumarket/internal/logger"
	"edumarket/internal/model"
	"edumarket/internal/security"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// Demo catalog. The password of every seeded account is "password".
var seedInstitutions = []model.Institution{
	{
		Name:        "Tech University",
		LogoURL:     "https://ui-avatars.com/api/?name=Tech+University&background=0D8ABC&color=fff",
		Description: "Líderes en formación tecnológica y digital.",
		Rating:      4.8,
	},
	{
		Name:        "Business School Global",
		LogoURL:     "https://ui-avatars.com/api/?name=BSG&background=6366f1&color=fff",
		Description: "Formando a los líderes empresariales del mañana.",
		Rating:      4.9,
	},
	{
		Name:        "Design Institute",
		LogoURL:     "https://ui-avatars.com/api/?name=DI&background=ec4899&color=fff",
		Description: "Creatividad e innovación en cada curso.",
		Rating:      4.7,
	},
}

var seedCourses = []struct {
	course           model.Course
	institutionIndex int
}{
	{
		institutionIndex: 0,
		course: model.Course{
			Title:           "Full Stack Web Development Bootcamp",
			Price:           299,
			Currency:        "USD",
			Rating:          4.9,
			ReviewsCount:    128,
			Category:        "Tecnología",
			ImageURL:        "https://images.unsplash.com/photo-1498050108023-c5249f4df085?auto=format&fit=crop&w=600&q=80",
			Description:     "Domina el desarrollo web moderno con React, Node.js y más.",
			FullDescription: "Este bootcamp intensivo te llevará desde cero hasta experto en desarrollo web Full Stack.",
			Syllabus:        []string{"HTML/CSS", "JavaScript", "React", "Node.js", "SQL/NoSQL"},
			Dates:           []string{"2024-06-01", "2024-08-01"},
			Mode:            "Online",
			Duration:        "12 Semanas",
		},
	},
	{
		institutionIndex: 1,
		course: model.Course{
			Title:           "Master en Gestión de Proyectos Ágiles",
			Price:           450,
			Currency:        "USD",
			Rating:          4.8,
			ReviewsCount:    85,
			Category:        "Negocios",
			ImageURL:        "https://images.unsplash.com/photo-1519389950473-47ba0277781c?auto=format&fit=crop&w=600&q=80",
			Description:     "Aprende Scrum, Kanban y liderazgo de equipos de alto rendimiento.",
			FullDescription: "Conviértete en un experto en metodologías ágiles.",
			Syllabus:        []string{"Scrum", "Kanban", "Liderazgo"},
			Dates:           []string{"2024-05-15"},
			Mode:            "Híbrido",
			Duration:        "6 Meses",
		},
	},
	{
		institutionIndex: 2,
		course: model.Course{
			Title:           "UX/UI Design Fundamentals",
			Price:           199,
			Currency:        "USD",
			Rating:          4.7,
			ReviewsCount:    210,
			Category:        "Diseño",
			ImageURL:        "https://images.unsplash.com/photo-1561070791-2526d30994b5?auto=format&fit=crop&w=600&q=80",
			Description:     "Crea experiencias de usuario impactantes y diseños visuales atractivos.",
			FullDescription: "Sumérgete en el mundo del diseño de experiencia de usuario e interfaz.",
			Syllabus:        []string{"Design Thinking", "Wireframing", "Prototyping"},
			Dates:           []string{"2024-06-10"},
			Mode:            "Online",
			Duration:        "8 Semanas",
		},
	},
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'student',
		avatar_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS institutions (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		logo_url TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		rating DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id BIGSERIAL PRIMARY KEY,
		institution_id BIGINT NOT NULL REFERENCES institutions(id),
		title TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL DEFAULT 0,
		currency TEXT NOT NULL DEFAULT 'USD',
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		reviews_count INTEGER NOT NULL DEFAULT 0,
		category TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		full_description TEXT NOT NULL DEFAULT '',
		syllabus JSONB NOT NULL DEFAULT '[]',
		dates JSONB NOT NULL DEFAULT '[]',
		mode TEXT NOT NULL DEFAULT '',
		duration TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS saved_courses (
		account_id TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		course_id BIGINT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		PRIMARY KEY (account_id, course_id)
	)`,
	`CREATE TABLE IF NOT EXISTS registered_courses (
		account_id TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		course_id BIGINT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		PRIMARY KEY (account_id, course_id)
	)`,
	`CREATE TABLE IF NOT EXISTS certificates (
		id BIGSERIAL PRIMARY KEY,
		account_id TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		course_id BIGINT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		url TEXT NOT NULL DEFAULT '',
		date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

func main() {
	logger := logger.New()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("Warning: no .env file found")
	}
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Msgf("Error loading config: %v", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Msgf("Failed to open DB connection: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		logger.Fatal().Msgf("Failed to ping DB: %v", err)
	}

	logger.Info().Msg("Creating schema...")
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			logger.Fatal().Msgf("Failed to create schema: %v", err)
		}
	}

	logger.Info().Msg("Seeding database...")
	if _, err := db.ExecContext(ctx, `TRUNCATE TABLE registered_courses, saved_courses, certificates, courses, institutions, accounts RESTART IDENTITY CASCADE`); err != nil {
		logger.Fatal().Msgf("Failed to clear existing data: %v", err)
	}

	// Demo account
	hash, err := security.NewPasswordHasher().Hash("password")
	if err != nil {
		logger.Fatal().Msgf("Failed to hash demo password: %v", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO accounts (id, full_name, email, password_hash, role) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New().String(), "Daniel User", "daniel@example.com", hash, model.RoleStudent,
	); err != nil {
		logger.Fatal().Msgf("Failed to seed accounts: %v", err)
	}
	logger.Info().Msg("Accounts seeded")

	// Institutions
	institutionIDs := make([]int64, 0, len(seedInstitutions))
	for _, inst := range seedInstitutions {
		var id int64
		err := db.QueryRowContext(ctx,
			`INSERT INTO institutions (name, logo_url, description, rating) VALUES ($1, $2, $3, $4) RETURNING id`,
			inst.Name, inst.LogoURL, inst.Description, inst.Rating,
		).Scan(&id)
		if err != nil {
			logger.Fatal().Msgf("Failed to seed institutions: %v", err)
		}
		institutionIDs = append(institutionIDs, id)
	}
	logger.Info().Msg("Institutions seeded")

	// Courses
	for _, sc := range seedCourses {
		c := sc.course
		syllabus, err := json.Marshal(c.Syllabus)
		if err != nil {
			logger.Fatal().Msgf("Failed to encode syllabus: %v", err)
		}
		dates, err := json.Marshal(c.Dates)
		if err != nil {
			logger.Fatal().Msgf("Failed to encode dates: %v", err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO courses (institution_id, title, price, currency, rating, reviews_count,
			        category, image_url, description, full_description, syllabus, dates, mode, duration)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			institutionIDs[sc.institutionIndex], c.Title, c.Price, c.Currency, c.Rating, c.ReviewsCount,
			c.Category, c.ImageURL, c.Description, c.FullDescription, syllabus, dates, c.Mode, c.Duration,
		); err != nil {
			logger.Fatal().Msgf("Failed to seed courses: %v", err)
		}
	}
	logger.Info().Msg("Courses seeded")

	logger.Info().Msg("Seeding complete")
}
