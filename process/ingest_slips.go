// Command process ingests a directory of order-slip images: it creates
// Upload rows, runs the extraction pipeline, and records suggested orders
// for slips whose amount resolved. Optional watch mode picks up new files
// as they arrive.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"siparis/models"
	"siparis/pkg/ocr"
)

var db *gorm.DB

var (
	verbose bool
	dryRun  bool
)

var extractor = ocr.NewProcessor()

var extMime = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

func mustInitDBFromEnv() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatalf("DB_DSN must be set in environment to run this tool")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return gdb
}

func main() {
	dirFlag := flag.String("dir", "uploads/slips", "directory to scan for order-slip images")
	userID := flag.Uint("user-id", 0, "User ID to assign uploads to (if omitted attempts admin)")
	watch := flag.Bool("watch", false, "Watch directory for new files")
	workers := flag.Int("workers", 0, "Worker pool size (default NumCPU)")
	flag.BoolVar(&dryRun, "dry-run", false, "Skip all DB writes; just run extraction and report")
	flag.BoolVar(&verbose, "verbose", false, "Verbose per-file logging")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	if dryRun {
		log.Printf("Dry-run: scanning %s (no DB interaction)", *dirFlag)
		for _, f := range listImageFiles(*dirFlag) {
			data, err := extractOne(filepath.Join(*dirFlag, f))
			if err != nil {
				log.Printf("%s: %v", f, err)
				continue
			}
			log.Printf("%s: quality=%s amount=%.2f name=%q phone=%q missing=%v",
				f, data.Quality, data.OrderAmount, data.CustomerName, data.CustomerPhone, data.MissingFields)
		}
		return
	}

	db = mustInitDBFromEnv()
	user := resolveUser(*userID)
	log.Printf("Ingesting as user %s (id=%d)", user.Username, user.ID)

	files := listImageFiles(*dirFlag)
	log.Printf("Found %d candidate files", len(files))
	runWorkerPool(*dirFlag, user, files, *workers, nil)

	if *watch {
		if err := watchDirectory(*dirFlag, user, *workers); err != nil {
			log.Fatalf("watch failed: %v", err)
		}
	}
}

func resolveUser(id uint) models.User {
	var user models.User
	if id != 0 {
		if err := db.First(&user, id).Error; err != nil {
			log.Fatalf("user %d not found: %v", id, err)
		}
		return user
	}
	if err := db.Where("username = ?", "admin").First(&user).Error; err != nil {
		log.Fatalf("no -user-id given and admin user missing: %v", err)
	}
	return user
}

func listImageFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !isSupportedExt(e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

func isSupportedExt(name string) bool {
	// ignore scratch files to avoid recursive processing
	if strings.Contains(name, ".ocr.") {
		return false
	}
	_, ok := extMime[strings.ToLower(filepath.Ext(name))]
	return ok
}

// runWorkerPool processes an initial file list and then any names arriving
// on extraCh until it closes.
func runWorkerPool(dir string, user models.User, initial []string, workers int, extraCh <-chan string) {
	fileCh := make(chan string, 256)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range fileCh {
				if err := processSingleFile(dir, name, user); err != nil {
					log.Printf("%s: %v", name, err)
				}
			}
		}()
	}
	for _, f := range initial {
		fileCh <- f
	}
	if extraCh != nil {
		for name := range extraCh {
			fileCh <- name
		}
	}
	close(fileCh)
	wg.Wait()
}

// processSingleFile is idempotent: an already-recorded file is skipped
// unless its previous extraction failed.
func processSingleFile(dir, name string, user models.User) error {
	var up models.Upload
	err := db.Where("user_id = ? AND file_name = ?", user.ID, name).First(&up).Error
	if err == nil && !up.Failed {
		if verbose {
			log.Printf("%s: already ingested (upload=%d)", name, up.ID)
		}
		return nil
	}
	if err != nil {
		up = models.Upload{
			UserID:      user.ID,
			FileName:    name,
			StorePath:   "public/slips/" + name,
			ContentType: extMime[strings.ToLower(filepath.Ext(name))],
		}
		if err := db.Create(&up).Error; err != nil {
			return err
		}
	}

	data, err := extractOne(filepath.Join(dir, name))
	if err != nil {
		up.Failed = true
		up.FailedReason = err.Error()
		db.Save(&up)
		return err
	}
	if up.Failed {
		up.Failed = false
		up.FailedReason = ""
	}
	if data.OrderAmount <= 0 {
		// keep the upload for manual entry; nothing to suggest
		up.Failed = true
		up.FailedReason = "no order amount resolved"
		db.Save(&up)
		if verbose {
			log.Printf("%s: no amount (quality=%s missing=%v)", name, data.Quality, data.MissingFields)
		}
		return nil
	}

	order := models.Order{
		UserID:          user.ID,
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		DeliveryAddress: data.DeliveryAddress,
		PickupAddress:   data.PickupAddress,
		SubtotalAmount:  data.SubtotalAmount,
		DiscountAmount:  data.DiscountAmount,
		OrderAmount:     data.OrderAmount,
		Notes:           data.Notes,
		Quality:         string(data.Quality),
		Date:            time.Now(),
	}
	for _, label := range data.Items {
		order.Items = append(order.Items, models.OrderItem{Label: label})
	}
	if err := db.Create(&order).Error; err != nil {
		return err
	}
	up.OrderID = &order.ID
	db.Save(&up)
	if verbose {
		log.Printf("%s: order %d amount=%.2f quality=%s", name, order.ID, order.OrderAmount, order.Quality)
	}
	return nil
}

// extractOne copies the image to a scratch file first; the pipeline removes
// its input and the inbox file must survive for audit.
func extractOne(path string) (*ocr.ExtractedOrderData, error) {
	src, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	scratch, err := os.CreateTemp("", "ingest-*"+filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(scratch, src); err != nil {
		scratch.Close()
		os.Remove(scratch.Name())
		return nil, err
	}
	if err := scratch.Close(); err != nil {
		os.Remove(scratch.Name())
		return nil, err
	}
	return extractor.ProcessOrderImage(scratch.Name())
}

func watchDirectory(dir string, user models.User, workers int) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	log.Printf("Watching %s (debounced) ...", dir)

	fileCh := make(chan string, 256)
	go func() {
		// debounce: wait for a file to stop changing before queueing it
		pending := map[string]time.Time{}
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					close(fileCh)
					return
				}
				if ev.Op&fsnotify.Create == fsnotify.Create {
					name := filepath.Base(ev.Name)
					if isSupportedExt(name) {
						pending[name] = time.Now()
					}
				}
			case <-ticker.C:
				now := time.Now()
				for name, t := range pending {
					if now.Sub(t) > 300*time.Millisecond { // stable
						fileCh <- name
						delete(pending, name)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					close(fileCh)
					return
				}
				log.Printf("watch error: %v", err)
			}
		}
	}()

	runWorkerPool(dir, user, nil, workers, fileCh)
	return nil
}
