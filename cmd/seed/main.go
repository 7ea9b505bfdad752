// Populates the database with demo data. Run: go run ./cmd/seed
package main

import (
	"errors"
	"log"
	"time"

	"estamparia-backend/config"
	"estamparia-backend/models"
	"estamparia-backend/services"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Client{},
		&models.Supplier{},
		&models.Product{},
		&models.Print{},
		&models.Quote{},
		&models.Order{},
		&models.Transaction{},
		&models.Sequence{},
	)

	log.Println("Seeding database...")
	seedClients()
	seedSuppliers()
	seedProducts()
	seedPrints()
	seedQuotes()
	seedOrders()
	seedTransactions()
	log.Println("Seed finished")
}

func money(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func daysFromNow(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func seedClients() {
	clients := []models.Client{
		{Name: "Igreja Batista Central", Contact: "Pastor João Silva", Email: "contato@ibcentral.org", Phone: "(11) 98765-4321", Address: "Rua das Flores, 123 - São Paulo/SP"},
		{Name: "Comunidade Vida Nova", Contact: "Pr. Carlos Santos", Email: "carlos@vidanova.org", Phone: "(11) 97654-3210", Address: "Av. Brasil, 500 - Campinas/SP"},
		{Name: "Ministério Louvor e Adoração", Contact: "Líder Maria Costa", Email: "maria@louvor.com", Phone: "(21) 98888-7777", Address: "Rua da Paz, 45 - Rio de Janeiro/RJ"},
		{Name: "Grupo de Jovens Aliança", Contact: "Diego Oliveira", Email: "diego@alianca.org", Phone: "(31) 99999-8888", Address: "Av. Contorno, 200 - Belo Horizonte/MG"},
		{Name: "Igreja Presbiteriana Renovada", Contact: "Rev. Paulo Mendes", Email: "paulo@iprenovada.org", Phone: "(41) 98765-1234", Address: "Rua Paraná, 78 - Curitiba/PR"},
	}
	for _, client := range clients {
		var existing models.Client
		err := config.DB.Where("email = ?", client.Email).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			config.DB.Create(&client)
		}
	}
}

func seedSuppliers() {
	suppliers := []models.Supplier{
		{Name: "Malhas Premium SP", Contact: "Roberto Andrade", Email: "roberto@malhaspremium.com", Phone: "(11) 3456-7890", Category: "Tecidos", Status: "Ativo", Rating: 5, ProductionTimeDays: 5},
		{Name: "Silk Master", Contact: "Ana Paula", Email: "ana@silkmaster.com.br", Phone: "(11) 2345-6789", Category: "Estamparia", Status: "Ativo", Rating: 5, ProductionTimeDays: 3},
		{Name: "Costura Express", Contact: "José Lima", Email: "jose@costuraexpress.com", Phone: "(11) 3333-4444", Category: "Confecção", Status: "Ativo", Rating: 4, ProductionTimeDays: 7},
		{Name: "Bordados Finos", Contact: "Clara Mendes", Email: "clara@bordadosfinos.com", Phone: "(11) 5555-6666", Category: "Acabamentos", Status: "Ativo", Rating: 5, ProductionTimeDays: 4},
		{Name: "Etiquetas Brasil", Contact: "Fernando Costa", Email: "fernando@etiquetasbr.com", Phone: "(11) 7777-8888", Category: "Etiquetas", Status: "Ativo", Rating: 4, ProductionTimeDays: 2},
	}
	for _, supplier := range suppliers {
		var existing models.Supplier
		err := config.DB.Where("email = ?", supplier.Email).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			config.DB.Create(&supplier)
		}
	}
}

func seedProducts() {
	products := []models.Product{
		{Name: "Camiseta Básica Algodão", SKU: "CAM-BAS-001", Category: "Camisetas", Price: money("49.90"), Cost: money("22.00"), Stock: 150, Colors: models.StringList{"Branco", "Preto", "Cinza", "Azul Marinho"}, Sizes: models.StringList{"P", "M", "G", "GG"}},
		{Name: "Baby Look Premium", SKU: "BAB-PRE-001", Category: "Baby Look", Price: money("54.90"), Cost: money("25.00"), Stock: 100, Colors: models.StringList{"Branco", "Preto", "Rosa", "Azul"}, Sizes: models.StringList{"P", "M", "G", "GG"}},
		{Name: "Camiseta Manga Longa", SKU: "CAM-LNG-001", Category: "Camisetas", Price: money("69.90"), Cost: money("32.00"), Stock: 80, Colors: models.StringList{"Branco", "Preto", "Cinza"}, Sizes: models.StringList{"P", "M", "G", "GG"}},
		{Name: "Moletom Canguru", SKU: "MOL-CAN-001", Category: "Inverno", Price: money("129.90"), Cost: money("58.00"), Stock: 50, Colors: models.StringList{"Preto", "Cinza Mescla", "Azul Marinho"}, Sizes: models.StringList{"P", "M", "G", "GG", "XGG"}},
		{Name: "Regata Fitness", SKU: "REG-FIT-001", Category: "Fitness", Price: money("44.90"), Cost: money("18.00"), Stock: 120, Colors: models.StringList{"Branco", "Preto", "Rosa", "Azul"}, Sizes: models.StringList{"P", "M", "G", "GG"}},
		{Name: "Polo Bordada", SKU: "POL-BOR-001", Category: "Polo", Price: money("89.90"), Cost: money("42.00"), Stock: 60, Colors: models.StringList{"Branco", "Preto", "Azul Royal"}, Sizes: models.StringList{"P", "M", "G", "GG"}},
	}
	for _, product := range products {
		var existing models.Product
		err := config.DB.Where("sku = ?", product.SKU).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			config.DB.Create(&product)
		}
	}
}

func seedPrints() {
	prints := []models.Print{
		{Name: "Salmo 23", Technique: "Silk Screen", Colors: "2", ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300", ImageType: "url", Tags: models.StringList{"salmos", "paz", "clássico"}},
		{Name: "Cruz Minimalista", Technique: "DTG", Colors: "Full Color", ImageURL: "https://images.unsplash.com/photo-1499209974431-9dddcece7f88?w=300", ImageType: "url", Tags: models.StringList{"cruz", "moderno", "minimalista"}},
		{Name: "Jesus Loves You", Technique: "Transfer", Colors: "3", ImageURL: "https://images.unsplash.com/photo-1544027993-37dbfe43562a?w=300", ImageType: "url", Tags: models.StringList{"amor", "jesus", "inglês"}},
		{Name: "Versículo João 3:16", Technique: "Silk Screen", Colors: "1", ImageURL: "https://images.unsplash.com/photo-1504052434569-70ad5836ab65?w=300", ImageType: "url", Tags: models.StringList{"versículo", "joão", "clássico"}},
		{Name: "Adoração Contemporânea", Technique: "DTG", Colors: "Full Color", ImageURL: "https://images.unsplash.com/photo-1478147427282-58a87a120781?w=300", ImageType: "url", Tags: models.StringList{"adoração", "louvor", "moderno"}},
		{Name: "Fé Tipográfica", Technique: "Silk Screen", Colors: "1", ImageURL: "https://images.unsplash.com/photo-1519681393784-d120267933ba?w=300", ImageType: "url", Tags: models.StringList{"fé", "tipografia", "minimalista"}},
	}
	for _, p := range prints {
		var existing models.Print
		err := config.DB.Where("name = ?", p.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			config.DB.Create(&p)
		}
	}
}

// createNumbered inserts a record with a freshly minted number so later
// API-created records continue the sequence.
func createNumbered(kind string, assign func(tx *gorm.DB, seq int64) error) {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		seq, err := services.NextSequence(tx, kind)
		if err != nil {
			return err
		}
		return assign(tx, seq)
	})
	if err != nil {
		log.Printf("Seed insert failed: %v", err)
	}
}

func firstClientIDs(n int) []uint {
	var clients []models.Client
	config.DB.Order("id").Limit(n).Find(&clients)
	ids := make([]uint, 0, n)
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	for len(ids) < n {
		ids = append(ids, 1)
	}
	return ids
}

func seedQuotes() {
	var count int64
	config.DB.Model(&models.Quote{}).Count(&count)
	if count > 0 {
		return
	}

	clientIDs := firstClientIDs(3)
	year := time.Now().Year()
	quotes := []models.Quote{
		{ClientID: &clientIDs[0], LeadName: "Igreja Batista Central", ItemsSummary: "50x Camiseta Salmo 23 (P-GG)", TotalValue: money("2495.00"), Status: "Aprovada"},
		{ClientID: &clientIDs[1], LeadName: "Comunidade Vida Nova", ItemsSummary: "100x Baby Look Cruz Minimalista", TotalValue: money("5490.00"), Status: "Pendente"},
		{LeadName: "Pr. Marcos Silva", LeadContact: "(11) 99999-0000", ItemsSummary: "30x Moletom Personalizado", TotalValue: money("3897.00"), Status: "Enviada"},
		{ClientID: &clientIDs[2], LeadName: "Ministério Louvor", ItemsSummary: "80x Camiseta Adoração + 40x Regata", TotalValue: money("5788.00"), Status: "Rascunho"},
	}
	for i := range quotes {
		quote := quotes[i]
		createNumbered(services.SeqQuotes, func(tx *gorm.DB, seq int64) error {
			quote.QuoteNumber = services.QuoteNumber(year, seq)
			return tx.Create(&quote).Error
		})
	}
}

func seedOrders() {
	var count int64
	config.DB.Model(&models.Order{}).Count(&count)
	if count > 0 {
		return
	}

	clientIDs := firstClientIDs(3)
	quoteID := uint(1)
	deliveries := []time.Time{daysFromNow(10), daysFromNow(15), daysFromNow(5), daysFromNow(20)}
	orders := []models.Order{
		{QuoteID: &quoteID, ClientID: clientIDs[0], ItemsSummary: "50x Camiseta Salmo 23", TotalValue: money("2495.00"), DeliveryDate: &deliveries[0], Stage: "Estampa", Progress: 45, Priority: "Normal"},
		{ClientID: clientIDs[1], ItemsSummary: "100x Baby Look Cruz Minimalista", TotalValue: money("5490.00"), DeliveryDate: &deliveries[1], Stage: "Corte", Progress: 20, Priority: "Alta"},
		{ClientID: clientIDs[2], ItemsSummary: "200x Camiseta Evento Jovens", TotalValue: money("9980.00"), DeliveryDate: &deliveries[2], Stage: "Acabamento", Progress: 85, Priority: "Urgente"},
		{ClientID: clientIDs[0], ItemsSummary: "30x Polo Bordada", TotalValue: money("2697.00"), DeliveryDate: &deliveries[3], Stage: "Aguardando", Progress: 0, Priority: "Normal"},
	}
	for i := range orders {
		order := orders[i]
		createNumbered(services.SeqOrders, func(tx *gorm.DB, seq int64) error {
			order.OrderNumber = services.OrderNumber(seq)
			return tx.Create(&order).Error
		})
	}
}

func seedTransactions() {
	var count int64
	config.DB.Model(&models.Transaction{}).Count(&count)
	if count > 0 {
		return
	}

	orderID := func(id uint) *uint { return &id }
	transactions := []models.Transaction{
		{OrderID: orderID(1), Description: "Pagamento Pedido PED-1024 - Igreja Batista", Category: "Vendas", Type: "income", Amount: money("2495.00"), Status: "Confirmado", TransactionDate: daysFromNow(-5)},
		{Description: "Compra Tecido Malha - Malhas Premium", Category: "Matéria Prima", Type: "expense", Amount: money("1850.00"), Status: "Confirmado", TransactionDate: daysFromNow(-3)},
		{OrderID: orderID(2), Description: "Sinal Pedido PED-1025 - 50%", Category: "Vendas", Type: "income", Amount: money("2745.00"), Status: "Confirmado", TransactionDate: daysFromNow(-2)},
		{Description: "Pagamento Fornecedor Silk Master", Category: "Matéria Prima", Type: "expense", Amount: money("980.00"), Status: "Pendente", TransactionDate: daysFromNow(5)},
		{OrderID: orderID(3), Description: "Pagamento Completo PED-1026", Category: "Vendas", Type: "income", Amount: money("9980.00"), Status: "Agendado", TransactionDate: daysFromNow(7)},
		{Description: "Aluguel Galpão Dezembro", Category: "Despesas Fixas", Type: "expense", Amount: money("3500.00"), Status: "Pendente", TransactionDate: daysFromNow(10)},
		{Description: "Manutenção Máquina Silk", Category: "Manutenção", Type: "expense", Amount: money("450.00"), Status: "Confirmado", TransactionDate: daysFromNow(-1)},
	}
	for i := range transactions {
		trx := transactions[i]
		createNumbered(services.SeqTransactions, func(tx *gorm.DB, seq int64) error {
			trx.TransactionNumber = services.TransactionNumber(seq)
			return tx.Create(&trx).Error
		})
	}
}
