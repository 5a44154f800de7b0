// seed inserts demo accounts and a handful of job postings into the
// local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aselbek/jobboard/internal/infrastructure/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const (
	recruiterEmail = "recruiter@demo.local"
	seekerEmail    = "seeker@demo.local"
	demoPassword   = "password123"
)

type jobSpec struct {
	title     string
	company   string
	location  string
	jobType   string
	salaryMin int64
	salaryMax int64
	tags      []string
}

var postings = []jobSpec{
	{"Senior Go Engineer", "Acme Corp", "Berlin", "Full-time", 90000, 130000, []string{"Senior", "full-time"}},
	{"Backend Engineer", "Acme Corp", "Remote", "Remote", 70000, 110000, []string{"Mid", "contract"}},
	{"Platform Engineer", "Acme Corp", "Amsterdam", "Full-time", 85000, 120000, []string{"Senior", "full-time"}},
	{"QA Engineer", "Acme Corp", "Berlin", "Part-time", 40000, 60000, []string{"Junior", "part-time"}},
	{"Data Engineer", "Acme Corp", "Remote", "Remote", 80000, 125000, []string{"Mid", "freelance"}},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	recruiterID := upsertUser(ctx, pool, "Demo Recruiter", recruiterEmail, string(hash), "recruiter", "Acme Corp")
	seekerID := upsertUser(ctx, pool, "Demo Seeker", seekerEmail, string(hash), "seeker", "")

	// Insert postings, skip any that already exist (idempotent re-runs)
	var inserted, skipped int
	var jobIDs []string

	for _, spec := range postings {
		var id string
		err := pool.QueryRow(ctx, `
			INSERT INTO jobs (
				title, description, requirements, company, recruiter_id,
				location, type, salary_min, salary_max, tags
			)
			SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
			WHERE NOT EXISTS (
				SELECT 1 FROM jobs WHERE recruiter_id = $5 AND title = $1
			)
			RETURNING id`,
			spec.title,
			"We are hiring a "+spec.title+" to join our team.",
			"3+ years of relevant experience.",
			spec.company, recruiterID, spec.location, spec.jobType,
			spec.salaryMin, spec.salaryMax, spec.tags,
		).Scan(&id)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			skipped++
		case err != nil:
			log.Fatalf("insert job %q: %v", spec.title, err)
		default:
			jobIDs = append(jobIDs, id)
			inserted++
		}
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Recruiter:    %s / %s  (id %s)\n", recruiterEmail, demoPassword, recruiterID)
	fmt.Printf("  Seeker:       %s / %s  (id %s)\n", seekerEmail, demoPassword, seekerID)
	fmt.Printf("  Jobs created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Println()

	if len(jobIDs) > 0 {
		fmt.Println("  Job IDs:")
		for _, id := range jobIDs {
			fmt.Printf("    %s\n", id)
		}
	}

	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in as the seeker:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/auth/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", seekerEmail, demoPassword)
	fmt.Println()
	fmt.Println("    export JWT=eyJ...   # token from the response")
	fmt.Println()
	fmt.Println("  Step 2 — browse and apply:")
	fmt.Println()
	fmt.Println("    curl -s 'http://localhost:8080/jobs?search=engineer'")
	fmt.Println("    curl -s -X POST http://localhost:8080/applications/apply \\")
	fmt.Println("      -H \"Authorization: Bearer $JWT\" -H 'Content-Type: application/json' \\")
	fmt.Println("      -d '{\"jobId\":\"JOB_ID\",\"resumeUrl\":\"https://example.com/cv.pdf\",\"coverLetter\":\"Hello\"}'")
	fmt.Println()
	fmt.Println("  Step 3 — log in as the recruiter and review:")
	fmt.Println()
	fmt.Println("    curl -s http://localhost:8080/applications/job/JOB_ID -H \"Authorization: Bearer $JWT\"")
	fmt.Println("    curl -s -X PUT http://localhost:8080/applications/APP_ID/status \\")
	fmt.Println("      -H \"Authorization: Bearer $JWT\" -H 'Content-Type: application/json' \\")
	fmt.Println("      -d '{\"status\":\"Interview\"}'")
}

func upsertUser(ctx context.Context, pool *pgxpool.Pool, name, email, hash, role, company string) string {
	var id string
	err := pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role, company)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (LOWER(email)) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		name, email, hash, role, company,
	).Scan(&id)
	if err != nil {
		log.Fatalf("upsert user %s: %v", email, err)
	}
	return id
}
