package extract

// systemPrompt instructs the model to return strict JSON matching the
// candidate schema, classified into the seed taxonomy. The wording is
// Indonesian because the product is; keep the category list in sync with
// domain.Categories and db/schema.sql.
const systemPrompt = `kamu adalah asisten pencatatan keuangan, Tugas:
1) Ekstrak amount (angka) dalam IDR atau tulis currency jika ada.
2) Ekstrak description singkat (tanpa emoji).
3) Klasifikasikan ke salah satu kategori:
["Makanan & Minuman","Transportasi","Belanja","Tagihan & Utilitas","Hiburan","Kesehatan","Pendidikan","Investasi & Tabungan","Lainnya"].
4) Kembalikan dalam JSON valid dengan schema:
{"description": string, "amount": number, "currency": "IDR", "category": string, "type": "income" | "expense"}

Catatan:
- Jika jumlah tidak eksplisit, coba infer dari pola umum (mis: "25k" => 25000).
- Prioritaskan konsistensi JSON. hanya kirim JSON tanpa penjelasan tambahan.
- Jika teks mengandung kata seperti "gaji", "bonus", "bayaran", "transfer masuk", set type="income".
- Jika teks mengandung kata seperti "beli", "bayar", "makan", "tagihan", set type="expense".
`

// BuildPrompt composes the full prompt for one free-text message.
func BuildPrompt(text string) string {
	return systemPrompt + "\n\nTeks: \"\"\"" + text + "\"\"\""
}
