package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"linguatrack/internal/config"
	"linguatrack/internal/db"
	"linguatrack/internal/model"
	"linguatrack/internal/repository"
)

var fluencyNames = []string{"Beginner", "Elementary", "Intermediate", "Advanced", "Native"}

// seedLanguage is one starter catalog entry; Family is resolved to an id by name.
type seedLanguage struct {
	Name        string
	Description string
	NumSpeakers uint64
	Words       []string
	Family      string
}

var seedFamilies = []string{
	"Indo-European",
	"Sino-Tibetan",
	"Afro-Asiatic",
	"Austronesian",
	"Niger-Congo",
	"Japonic",
	"Koreanic",
	"Turkic",
	"Uralic",
}

var seedLanguages = []seedLanguage{
	{
		Name:        "English",
		Description: "West Germanic language that originated in early medieval England and became a global lingua franca through trade, science and media.",
		NumSpeakers: 1_500_000_000,
		Words:       []string{"hello", "water", "friend", "sun"},
		Family:      "Indo-European",
	},
	{
		Name:        "Mandarin Chinese",
		Description: "The most spoken Sinitic language, standardized from the Beijing dialect and written with Chinese characters.",
		NumSpeakers: 1_100_000_000,
		Words:       []string{"nǐ hǎo", "shuǐ", "péngyou", "tàiyáng"},
		Family:      "Sino-Tibetan",
	},
	{
		Name:        "Spanish",
		Description: "Romance language that evolved from Vulgar Latin in the Iberian Peninsula and spread across the Americas.",
		NumSpeakers: 560_000_000,
		Words:       []string{"hola", "agua", "amigo", "sol"},
		Family:      "Indo-European",
	},
	{
		Name:        "Arabic",
		Description: "Central Semitic language of the Arabian Peninsula, today a macrolanguage spanning many regional varieties.",
		NumSpeakers: 380_000_000,
		Words:       []string{"marhaban", "ma'", "sadiq", "shams"},
		Family:      "Afro-Asiatic",
	},
	{
		Name:        "Portuguese",
		Description: "Romance language from the medieval Kingdom of Galicia and northern Portugal, carried worldwide during the Age of Discovery.",
		NumSpeakers: 260_000_000,
		Words:       []string{"olá", "água", "amigo", "sol"},
		Family:      "Indo-European",
	},
	{
		Name:        "Swahili",
		Description: "Bantu language of the East African coast, shaped by centuries of Indian Ocean trade and rich in Arabic loanwords.",
		NumSpeakers: 80_000_000,
		Words:       []string{"jambo", "maji", "rafiki", "jua"},
		Family:      "Niger-Congo",
	},
	{
		Name:        "Japanese",
		Description: "Primary Japonic language, written with a mix of kanji and the kana syllabaries.",
		NumSpeakers: 125_000_000,
		Words:       []string{"konnichiwa", "mizu", "tomodachi", "taiyō"},
		Family:      "Japonic",
	},
	{
		Name:        "Turkish",
		Description: "Most spoken Turkic language, reformed in the 1920s from Ottoman script to a Latin alphabet.",
		NumSpeakers: 90_000_000,
		Words:       []string{"merhaba", "su", "arkadaş", "güneş"},
		Family:      "Turkic",
	},
	{
		Name:        "Finnish",
		Description: "Finnic language of the Uralic family, known for its extensive case system and vowel harmony.",
		NumSpeakers: 5_800_000,
		Words:       []string{"hei", "vesi", "ystävä", "aurinko"},
		Family:      "Uralic",
	},
	{
		Name:        "Indonesian",
		Description: "Standardized register of Malay, adopted as the unifying national language of Indonesia.",
		NumSpeakers: 200_000_000,
		Words:       []string{"halo", "air", "teman", "matahari"},
		Family:      "Austronesian",
	},
	{
		Name:        "Korean",
		Description: "Koreanic language written in the featural Hangul alphabet introduced in the 15th century.",
		NumSpeakers: 81_000_000,
		Words:       []string{"annyeong", "mul", "chingu", "taeyang"},
		Family:      "Koreanic",
	},
	{
		Name:        "Basque",
		Description: "Language isolate of the western Pyrenees, unrelated to any known language family.",
		NumSpeakers: 750_000,
		Words:       []string{"kaixo", "ur", "lagun", "eguzki"},
		Family:      "",
	},
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load(".env.local")
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.LanguageFamily{},
		&model.Language{},
		&model.Fluency{},
		&model.UserLanguage{},
		&model.AccessLog{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	familyRepo := repository.NewFamilyRepository(gormDB)
	fluencyRepo := repository.NewFluencyRepository(gormDB)
	languageRepo := repository.NewLanguageRepository(gormDB)

	created, err := seedFluencies(ctx, fluencyRepo)
	if err != nil {
		log.Fatalf("Failed to seed fluencies: %v", err)
	}
	log.Printf("Fluencies seeded (%d new)", created)

	familyIDs, created, err := seedLanguageFamilies(ctx, familyRepo)
	if err != nil {
		log.Fatalf("Failed to seed language families: %v", err)
	}
	log.Printf("Language families seeded (%d new)", created)

	created, updated, err := seedCatalog(ctx, gormDB, languageRepo, familyIDs)
	if err != nil {
		log.Fatalf("Failed to seed languages: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New languages created: %d", created)
	log.Printf("  - Existing languages updated: %d", updated)
}

// seedFluencies inserts any missing fluency levels in their canonical order.
func seedFluencies(ctx context.Context, repo repository.FluencyRepository) (int, error) {
	created := 0
	for _, name := range fluencyNames {
		_, err := repo.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}
		if err := repo.Create(ctx, &model.Fluency{Name: name}); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func seedLanguageFamilies(ctx context.Context, repo repository.FamilyRepository) (map[string]uint, int, error) {
	ids := make(map[string]uint, len(seedFamilies))
	created := 0
	for _, name := range seedFamilies {
		family, err := repo.FindByName(ctx, name)
		if err == nil {
			ids[name] = family.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, created, err
		}
		fresh := &model.LanguageFamily{Name: name}
		if err := repo.Create(ctx, fresh); err != nil {
			return nil, created, err
		}
		ids[name] = fresh.ID
		created++
	}
	return ids, created, nil
}

// seedCatalog creates or updates starter languages, matching by name.
func seedCatalog(ctx context.Context, gormDB *gorm.DB, repo repository.LanguageRepository, familyIDs map[string]uint) (created, updated int, err error) {
	for _, item := range seedLanguages {
		var familyID *uint
		if item.Family != "" {
			if id, ok := familyIDs[item.Family]; ok {
				familyID = &id
			}
		}

		var existing model.Language
		findErr := gormDB.WithContext(ctx).Where("name = ?", item.Name).First(&existing).Error
		if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return created, updated, findErr
		}

		if findErr == nil {
			existing.Description = item.Description
			existing.NumSpeakers = item.NumSpeakers
			existing.Words = model.StringList(item.Words)
			existing.LanguageFamilyID = familyID
			if err := repo.Update(ctx, &existing); err != nil {
				return created, updated, err
			}
			updated++
			continue
		}

		language := &model.Language{
			Name:             item.Name,
			Description:      item.Description,
			NumSpeakers:      item.NumSpeakers,
			Words:            model.StringList(item.Words),
			LanguageFamilyID: familyID,
		}
		if err := repo.Create(ctx, language); err != nil {
			return created, updated, err
		}
		created++
	}
	return created, updated, nil
}
