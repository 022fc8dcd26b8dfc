package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitbite/internal/config"
	"fitbite/internal/db"
	"fitbite/internal/model"
	"fitbite/internal/repository"
)

var seedProducts = []model.Product{
	{
		Name:        "Protein Bowl",
		BasePrice:   7990,
		ImageURL:    "/images/protein-bowl.jpg",
		Description: "Grilled chicken, quinoa, avocado and greens",
		Type:        model.ProductTypeBowl,
		Kcal:        620, Protein: 42, Fat: 18, Carbs: 55,
		Available: true,
	},
	{
		Name:        "Veggie Bowl",
		BasePrice:   6990,
		ImageURL:    "/images/veggie-bowl.jpg",
		Description: "Roasted vegetables, hummus, brown rice",
		Type:        model.ProductTypeBowl,
		Kcal:        540, Protein: 18, Fat: 16, Carbs: 72,
		Available: true,
	},
	{
		Name:        "Salmon Bowl",
		BasePrice:   9490,
		ImageURL:    "/images/salmon-bowl.jpg",
		Description: "Baked salmon, edamame, soba noodles",
		Type:        model.ProductTypeBowl,
		Kcal:        680, Protein: 38, Fat: 24, Carbs: 60,
		Available: true,
	},
	{
		Name:        "Energy Bar",
		BasePrice:   1990,
		ImageURL:    "/images/energy-bar.jpg",
		Description: "Dates, oats and almonds",
		Type:        model.ProductTypeSnack,
		Kcal:        230, Protein: 7, Fat: 9, Carbs: 32,
		Available: true,
	},
	{
		Name:        "Fruit Cup",
		BasePrice:   2490,
		ImageURL:    "/images/fruit-cup.jpg",
		Description: "Seasonal fruit mix",
		Type:        model.ProductTypeSnack,
		Kcal:        120, Protein: 2, Fat: 1, Carbs: 28,
		Available: true,
	},
	{
		Name:        "Lunch Combo",
		BasePrice:   10990,
		ImageURL:    "/images/lunch-combo.jpg",
		Description: "Any bowl plus a snack and a drink",
		Type:        model.ProductTypeCombo,
		Kcal:        850, Protein: 45, Fat: 22, Carbs: 90,
		Available: true,
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)

	created, skipped, err := seedCatalog(ctx, productRepo)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("Products: %d created, %d already present", created, skipped)

	if err := seedUser(ctx, userRepo, cartRepo, model.User{
		Name:    "Admin",
		Email:   "admin@fitbite.cl",
		RUT:     "12.345.678-5",
		Phone:   "+56900000000",
		Address: "Av. Principal 1234",
		Commune: "Santiago",
		Region:  "Metropolitana",
		Role:    model.RoleAdmin,
	}, "admin123"); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	if err := seedUser(ctx, userRepo, cartRepo, model.User{
		Name:    "Juan Álvarez",
		Email:   "juan@fitbite.cl",
		RUT:     "8.888.888-K",
		Phone:   "+56912345678",
		Address: "Av. Siempre Viva 742",
		Commune: "Providencia",
		Region:  "Metropolitana",
		Role:    model.RoleCustomer,
	}, "demo123"); err != nil {
		log.Fatalf("Failed to seed demo customer: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// seedCatalog inserts the demo products, skipping names already present.
func seedCatalog(ctx context.Context, repo repository.ProductRepository) (created, skipped int, err error) {
	for _, product := range seedProducts {
		_, err := repo.FindByName(ctx, product.Name)
		if err == nil {
			skipped++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return created, skipped, err
		}
		if err := repo.Create(ctx, &product); err != nil {
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}

// seedUser inserts a user with a hashed password and an empty cart, unless
// the email is already registered.
func seedUser(ctx context.Context, userRepo repository.UserRepository, cartRepo repository.CartRepository, user model.User, password string) error {
	existing, err := userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		log.Printf("User %s already present, skipping", user.Email)
		return nil
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashed)

	if err := userRepo.Create(ctx, &user); err != nil {
		return err
	}
	if err := cartRepo.Create(ctx, &model.Cart{UserID: user.ID}); err != nil {
		return err
	}

	log.Printf("User %s created", user.Email)
	return nil
}
