package database

import (
	"fmt"
	"time"

	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/pkg/utils"
	"gorm.io/gorm"
)

var (
	seedPrefixes      = []string{"Ltda", "S.A.", "EIRELI", "ME"}
	seedWords         = []string{"Solar", "Diesel", "Hidro", "Eólico", "Biogás", "Turbina"}
	seedLocations     = []string{"Usina Norte", "Subestação Centro", "Galpão 3", "Fazenda Boa Vista", "Porto Seco"}
	seedTasks         = []string{"Manutenção preventiva", "Troca de óleo", "Inspeção de rotina", "Falha no arranque", "Teste de carga"}
	seedPeople        = []string{"Ana Souza", "Carlos Lima", "Maria Oliveira", "João Pereira", "Beatriz Santos"}
	seedPhonePrefixes = []string{"(11) 9", "(21) 9", "(31) 9", "(41) 9"}
)

type SeedResult struct {
	Generators int
	Events     int
}

// Seed inserts sample generators and events referencing them, in one
// transaction.
func Seed(db *gorm.DB, generators, events int, rnd *utils.Rand) (SeedResult, error) {
	var result SeedResult
	if generators <= 0 {
		return result, fmt.Errorf("generators must be positive, got %d", generators)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		created := make([]models.Generator, 0, generators)
		for i := 0; i < generators; i++ {
			desc := fmt.Sprintf("%s %s", utils.Pick(rnd, seedTasks), rnd.String(6))
			created = append(created, models.Generator{
				Name:        fmt.Sprintf("%s %s G-%d", utils.Pick(rnd, seedPrefixes), utils.Pick(rnd, seedWords), i+1),
				Description: &desc,
			})
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}
		result.Generators = len(created)

		if events <= 0 {
			return nil
		}

		start := time.Now().AddDate(-1, 0, 0)
		batch := make([]models.Event, 0, events)
		for i := 0; i < events; i++ {
			day := start.AddDate(0, 0, rnd.Intn(365))
			phone := fmt.Sprintf("%s%04d-%04d", utils.Pick(rnd, seedPhonePrefixes), rnd.Intn(10000), rnd.Intn(10000))
			batch = append(batch, models.Event{
				Location:         utils.Pick(rnd, seedLocations),
				Description:      utils.Pick(rnd, seedTasks),
				Date:             models.NewDate(day.Year(), day.Month(), day.Day()),
				Operator:         utils.Pick(rnd, seedPeople),
				Responsible:      utils.Pick(rnd, seedPeople),
				ResponsiblePhone: &phone,
				GeneratorID:      utils.Pick(rnd, created).ID,
			})
		}
		if err := tx.Create(&batch).Error; err != nil {
			return err
		}
		result.Events = len(batch)
		return nil
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("failed to seed database: %w", err)
	}
	return result, nil
}
