package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/ent/lead"
	"github.com/familiasoares/imobicrm/ent/leadhistory"
)

// LeadGeneratorConfig configures lead generation parameters
type LeadGeneratorConfig struct {
	TenantID      int
	Count         int
	ResponsibleID *int
	// ArchivedChance is the probability a generated lead is archived.
	ArchivedChance float64
	// HistoryPerLead caps how many fake transitions each lead gets.
	HistoryPerLead int
}

// Brazilian cities with their phone area codes.
var cityDDD = map[string]string{
	"São Paulo":      "11",
	"Campinas":       "19",
	"Santos":         "13",
	"Rio de Janeiro": "21",
	"Niterói":        "21",
	"Belo Horizonte": "31",
	"Curitiba":       "41",
	"Porto Alegre":   "51",
	"Salvador":       "71",
	"Fortaleza":      "85",
}

var cities = []string{
	"São Paulo", "Campinas", "Santos", "Rio de Janeiro", "Niterói",
	"Belo Horizonte", "Curitiba", "Porto Alegre", "Salvador", "Fortaleza",
}

var firstNames = []string{
	"Ana", "Bruno", "Carla", "Diego", "Eduarda", "Felipe", "Gabriela",
	"Henrique", "Isabela", "João", "Larissa", "Marcos", "Natália",
	"Otávio", "Patrícia", "Rafael", "Sofia", "Thiago", "Vanessa", "William",
}

var lastNames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira",
	"Alves", "Pereira", "Lima", "Gomes", "Costa", "Ribeiro", "Martins",
	"Carvalho", "Almeida", "Lopes", "Soares", "Fernandes", "Vieira", "Barbosa",
}

var interesses = []string{
	"apartamento 2 quartos",
	"apartamento 3 quartos com varanda",
	"casa com quintal",
	"casa em condomínio fechado",
	"cobertura duplex",
	"kitnet perto do centro",
	"terreno para construção",
	"sala comercial",
	"apartamento na planta",
	"casa de praia",
}

var statuses = []lead.Status{
	"novo_lead", "em_atendimento", "visita", "agendamento",
	"proposta", "venda_fechada", "venda_perdida",
}

// Generator creates realistic Brazilian real-estate leads for seeding
// development databases.
type Generator struct {
	db  *ent.Client
	rng *rand.Rand
}

// NewGenerator creates a lead generator.
func NewGenerator(db *ent.Client) *Generator {
	return &Generator{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate creates config.Count leads for the tenant, spread across
// the pipeline with believable names, phones and interests.
func (g *Generator) Generate(ctx context.Context, config LeadGeneratorConfig) ([]*ent.Lead, error) {
	if config.Count <= 0 {
		return nil, fmt.Errorf("count must be positive")
	}

	leads := make([]*ent.Lead, 0, config.Count)
	for i := 0; i < config.Count; i++ {
		city := cities[g.rng.Intn(len(cities))]
		status := statuses[g.rng.Intn(len(statuses))]
		createdAt := gofakeit.DateRange(time.Now().AddDate(0, -3, 0), time.Now())

		builder := g.db.Lead.
			Create().
			SetTenantID(config.TenantID).
			SetName(g.fullName()).
			SetDdd(cityDDD[city]).
			SetPhone(g.mobileNumber()).
			SetCity(city).
			SetInteresse(interesses[g.rng.Intn(len(interesses))]).
			SetStatus(status).
			SetCreatedAt(createdAt).
			SetStatusChangedAt(gofakeit.DateRange(createdAt, time.Now())).
			SetArchived(g.rng.Float64() < config.ArchivedChance)
		if config.ResponsibleID != nil {
			builder.SetResponsibleID(*config.ResponsibleID)
		}

		created, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create lead %d: %w", i, err)
		}

		if config.HistoryPerLead > 0 {
			if err := g.generateHistory(ctx, created, config); err != nil {
				return nil, err
			}
		}

		leads = append(leads, created)
	}
	return leads, nil
}

// generateHistory fakes the path a lead took through the pipeline up to
// its current status.
func (g *Generator) generateHistory(ctx context.Context, l *ent.Lead, config LeadGeneratorConfig) error {
	steps := g.rng.Intn(config.HistoryPerLead) + 1
	prev := "novo_lead"
	at := l.CreatedAt

	for i := 0; i < steps; i++ {
		next := string(statuses[g.rng.Intn(len(statuses))])
		if i == steps-1 {
			next = string(l.Status)
		}
		if next == prev {
			continue
		}
		at = gofakeit.DateRange(at, time.Now())

		builder := g.db.LeadHistory.
			Create().
			SetLeadID(l.ID).
			SetStatusBefore(leadhistory.StatusBefore(prev)).
			SetStatusAfter(leadhistory.StatusAfter(next)).
			SetCreatedAt(at)
		if config.ResponsibleID != nil {
			builder.SetUserID(*config.ResponsibleID)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("failed to create history for lead %d: %w", l.ID, err)
		}
		prev = next
	}
	return nil
}

func (g *Generator) fullName() string {
	first := firstNames[g.rng.Intn(len(firstNames))]
	last := lastNames[g.rng.Intn(len(lastNames))]
	return first + " " + last
}

// mobileNumber produces a 9-digit Brazilian mobile number starting
// with 9, the format carriers have used since 2012.
func (g *Generator) mobileNumber() string {
	return fmt.Sprintf("9%04d%04d", g.rng.Intn(10000), g.rng.Intn(10000))
}
