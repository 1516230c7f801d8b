package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/papon78/RoyTopUpBazar/routes"
	"github.com/papon78/RoyTopUpBazar/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init persistence + store
	persistence := initPersistence()
	defer persistence.Close()

	s := store.New(persistence, store.AdminConfig{
		Username: getEnvOrDefault("ADMIN_USERNAME", "RoyTopUpadmin"),
		Password: getEnvOrDefault("ADMIN_PASSWORD", "admin638"),
		Email:    getEnvOrDefault("ADMIN_EMAIL", "admin@roytopup.com"),
		Name:     "Admin",
	})

	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		log.Fatalf("❌ Failed to load persisted state: %v", err)
	}
	s.StartSync(ctx)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, s)

	// Start state backup routine at 2 AM daily, keep 4 days of backups
	backupDir := getEnvOrDefault("BACKUP_DIR", "backup/state")
	go startDailyBackupAtFixedTime(s, backupDir, 4*24*time.Hour, 2, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initPersistence picks Redis when configured, otherwise the in-process map.
// Without Redis there is no cross-instance sync and state dies with the server.
func initPersistence() store.Persistence {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR not set, using in-memory persistence")
		return store.NewMemoryPersistence()
	}

	client, err := store.NewRedisClient(addr, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	return store.NewRedisPersistence(client)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// startDailyBackupAtFixedTime snapshots the persisted state daily at a fixed
// hour and removes old snapshots.
func startDailyBackupAtFixedTime(s *store.Store, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next state backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := writeSnapshot(s, destDir); err != nil {
			log.Printf("❌ Failed to back up state: %v", err)
		} else {
			log.Printf("✅ State backed up to %s", destDir)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// writeSnapshot dumps every shared state slice to one file per persisted key.
func writeSnapshot(s *store.Store, destDir string) error {
	snap, err := s.Snapshot(context.Background())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}
	for key, value := range snap {
		path := filepath.Join(destDir, key+".json")
		if err := os.WriteFile(path, []byte(value), 0644); err != nil {
			return err
		}
	}
	return nil
}

// cleanupOldBackups removes snapshot folders older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", folderPath, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", folderPath)
			}
		}
	}
}
