package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Fanadillah/kasku-app/internal/domain"
)

const welcomeText = `Halo! Saya adalah bot pengelola keuangan Anda. Kirimkan deskripsi singkat tentang transaksi Anda, dan saya akan mencatatnya untuk Anda. Misalnya: "Beli kopi 25k di Starbucks".`

const menuText = "Pilih menu:"

const catatText = `Kirimkan deskripsi transaksi Anda dalam satu pesan, misalnya: "Beli kopi 25k" atau "Gaji bulan ini 5jt".`

const helpText = `Cara pakai:
- Kirim deskripsi transaksi bebas, saya yang mencatat.
- /start menampilkan menu utama.
- Menu Statistik menampilkan ringkasan pemasukan dan pengeluaran.`

func categoriesText() string {
	var b strings.Builder
	b.WriteString("Kategori yang tersedia:")
	for _, name := range domain.Categories {
		b.WriteString("\n- ")
		b.WriteString(name)
	}
	return b.String()
}

func menuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Catat 📝", "catat"),
			tgbotapi.NewInlineKeyboardButtonData("Statistik 📊", "stats"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Kategori 🗂", "categories"),
			tgbotapi.NewInlineKeyboardButtonData("Bantuan ℹ️", "help"),
		),
	)
}
