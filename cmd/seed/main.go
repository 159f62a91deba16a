package main

import (
	"log"
	"os"

	"github.com/martinsuhendra/manta-sub002/internal/model"
	"github.com/martinsuhendra/manta-sub002/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Seeding Gym Membership Backend")

	seedUsers(db)
	pools := seedQuotaPools(db)
	classes := seedClassItems(db)
	seedProducts(db, classes, pools)

	color.Green("Seeding completed!")
}

func seedUsers(db *gorm.DB) {
	color.Yellow("\n1. Seeding Users...")

	users := []struct {
		Email    string
		FullName string
		Role     string
		Password string
	}{
		{Email: "admin@studio.local", FullName: "Studio Admin", Role: "ADMIN", Password: "admin12345"},
		{Email: "member@studio.local", FullName: "First Member", Role: "MEMBER", Password: "member12345"},
	}

	for _, u := range users {
		var existing model.User
		if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			log.Printf("User '%s' already exists, skipping...", u.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			color.Red("Error hashing password for '%s': %v", u.Email, err)
			continue
		}
		hashStr := string(hash)

		user := model.User{
			Email:        u.Email,
			PasswordHash: &hashStr,
			FullName:     u.FullName,
			Role:         u.Role,
			Status:       "active",
		}
		if err := db.Create(&user).Error; err != nil {
			color.Red("Error creating user '%s': %v", u.Email, err)
		} else {
			log.Printf("Created user: %s (%s)", u.FullName, u.Role)
		}
	}
}

func seedQuotaPools(db *gorm.DB) map[string]model.QuotaPool {
	color.Yellow("\n2. Seeding Quota Pools...")

	names := []string{"Group Classes"}
	pools := make(map[string]model.QuotaPool)

	for _, name := range names {
		var pool model.QuotaPool
		if err := db.Where("name = ?", name).First(&pool).Error; err == nil {
			pools[name] = pool
			log.Printf("Quota pool '%s' already exists, skipping...", name)
			continue
		}

		pool = model.QuotaPool{Name: name}
		if err := db.Create(&pool).Error; err != nil {
			color.Red("Error creating quota pool '%s': %v", name, err)
			continue
		}
		pools[name] = pool
		log.Printf("Created quota pool: %s", name)
	}

	return pools
}

func seedClassItems(db *gorm.DB) map[string]model.ClassItem {
	color.Yellow("\n3. Seeding Class Items...")

	items := []model.ClassItem{
		{Name: "Yoga", Description: "Vinyasa flow for all levels"},
		{Name: "Pilates", Description: "Mat pilates with small props"},
		{Name: "Personal Training", Description: "One-on-one session with a coach"},
	}

	classes := make(map[string]model.ClassItem)
	for _, item := range items {
		var existing model.ClassItem
		if err := db.Where("name = ?", item.Name).First(&existing).Error; err == nil {
			classes[item.Name] = existing
			log.Printf("Class item '%s' already exists, skipping...", item.Name)
			continue
		}

		if err := db.Create(&item).Error; err != nil {
			color.Red("Error creating class item '%s': %v", item.Name, err)
			continue
		}
		classes[item.Name] = item
		log.Printf("Created class item: %s", item.Name)
	}

	return classes
}

func seedProducts(db *gorm.DB, classes map[string]model.ClassItem, pools map[string]model.QuotaPool) {
	color.Yellow("\n4. Seeding Products...")

	groupPool, hasPool := pools["Group Classes"]

	var existing model.Product
	if err := db.Where("slug = ?", "all-access-monthly").First(&existing).Error; err == nil {
		log.Println("Product 'all-access-monthly' already exists, skipping...")
	} else {
		product := model.Product{
			Name:         "All Access Monthly",
			Slug:         "all-access-monthly",
			Description:  "Shared group class quota plus private PT sessions",
			Price:        750000,
			Currency:     "IDR",
			DurationDays: 30,
			IsActive:     true,
		}
		if err := db.Create(&product).Error; err != nil {
			color.Red("Error creating product: %v", err)
			return
		}

		items := []model.ProductItem{}
		if pt, ok := classes["Personal Training"]; ok {
			items = append(items, model.ProductItem{
				ProductId:   product.Id,
				ClassItemId: pt.Id,
				QuotaType:   "INDIVIDUAL",
				QuotaLimit:  4,
			})
		}
		if hasPool {
			for _, name := range []string{"Yoga", "Pilates"} {
				if class, ok := classes[name]; ok {
					poolId := groupPool.Id
					items = append(items, model.ProductItem{
						ProductId:   product.Id,
						ClassItemId: class.Id,
						QuotaType:   "SHARED",
						QuotaPoolId: &poolId,
						QuotaLimit:  12,
					})
				}
			}
		}

		for _, item := range items {
			if err := db.Create(&item).Error; err != nil {
				color.Red("Error creating product item: %v", err)
			}
		}
		log.Printf("Created product: %s with %d items", product.Name, len(items))
	}

	// Free trial product, activates without payment
	if err := db.Where("slug = ?", "free-trial-week").First(&existing).Error; err == nil {
		log.Println("Product 'free-trial-week' already exists, skipping...")
		return
	}
	trial := model.Product{
		Name:         "Free Trial Week",
		Slug:         "free-trial-week",
		Description:  "One week of group classes, on the house",
		Price:        0,
		Currency:     "IDR",
		DurationDays: 7,
		IsActive:     true,
	}
	if err := db.Create(&trial).Error; err != nil {
		color.Red("Error creating trial product: %v", err)
		return
	}
	if hasPool {
		if yoga, ok := classes["Yoga"]; ok {
			poolId := groupPool.Id
			item := model.ProductItem{
				ProductId:   trial.Id,
				ClassItemId: yoga.Id,
				QuotaType:   "SHARED",
				QuotaPoolId: &poolId,
				QuotaLimit:  3,
			}
			if err := db.Create(&item).Error; err != nil {
				color.Red("Error creating trial product item: %v", err)
			}
		}
	}
	log.Printf("Created product: %s", trial.Name)
}
