package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"fittrack/database"
	"fittrack/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of dummy users to create")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])

		database.ConnectDatabase()
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Error running migrations: %v", err)
		}

		log.Printf("Starting user seeder with %d users", *numUsers)
		if err := utils.SeedUsers(*numUsers); err != nil {
			log.Fatalf("Error seeding users: %v", err)
		}

	case "demo":
		database.ConnectDatabase()
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Error running migrations: %v", err)
		}

		log.Println("Seeding demo data set...")
		if err := utils.SeedDemoData(); err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}

	case "cleanup":
		log.Println("Removing seeded test users...")
		if err := utils.CleanupTestUsers(); err != nil {
			log.Fatalf("Error cleaning up test users: %v", err)
		}

	case "stats":
		count, err := utils.GetUserCount()
		if err != nil {
			log.Fatalf("Error getting stats: %v", err)
		}
		log.Printf("📊 Users in database: %d", count)

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown subcommand: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Database utility tool for FitTrack")
	fmt.Println("\nUsage:")
	fmt.Println("  db-tool COMMAND [OPTIONS]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed         Create dummy users with randomized biometric history")
	fmt.Println("               Options:")
	fmt.Println("                 --users=N   Number of dummy users to create (default: 100)")
	fmt.Println("")
	fmt.Println("  demo         Load a small deterministic demo data set (one user with a")
	fmt.Println("               weight trend, a goal with baseline, workouts and meals)")
	fmt.Println("")
	fmt.Println("  cleanup      Delete users created by the seed command")
	fmt.Println("")
	fmt.Println("  stats        Show the total user count")
	fmt.Println("")
	fmt.Println("  help         Show this help message")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("  db-tool seed --users=1000")
	fmt.Println("  db-tool demo")
	fmt.Println("  db-tool cleanup")
	fmt.Println("")
	fmt.Println("Environment variables:")
	fmt.Println("  DB_HOST      Database host")
	fmt.Println("  DB_PORT      Database port")
	fmt.Println("  DB_USER      Database user")
	fmt.Println("  DB_PASSWORD  Database password")
	fmt.Println("  DB_NAME      Database name")
	fmt.Println("  DB_SSLMODE   Database SSL mode")
}
