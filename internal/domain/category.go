package domain

// Category is one entry of the fixed, externally seeded taxonomy.
// The model classifies into these names; transactions reference them by id.
type Category struct {
	ID   int64
	Name string
}

// User is identified by the chat provider's numeric user id (stored as
// text so the web form's pseudo-id fits the same column).
type User struct {
	ID             int64
	TelegramUserID string
}

// Categories is the seed taxonomy, in seed order. Lookups during
// persistence are by exact name; an unmatched label stays uncategorized.
var Categories = []string{
	"Makanan & Minuman",
	"Transportasi",
	"Belanja",
	"Tagihan & Utilitas",
	"Hiburan",
	"Kesehatan",
	"Pendidikan",
	"Investasi & Tabungan",
	"Lainnya",
}

// FallbackCategory groups uncategorized rows on the dashboard.
const FallbackCategory = "Lainnya"
