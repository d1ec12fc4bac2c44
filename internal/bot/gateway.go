package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/Fanadillah/kasku-app/internal/api/middleware"
	"github.com/Fanadillah/kasku-app/internal/extract"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// Sender is the outbound side of the Telegram API. *tgbotapi.BotAPI
// satisfies it; tests substitute a recorder.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Gateway is the chat-side boundary. It validates the webhook secret,
// answers the start command and menu callbacks locally, and relays
// everything else through the extraction pipeline. Once the secret check
// passes it always acknowledges with 2xx: the provider redelivers on
// anything else, and redelivery of a recorded transaction would double
// it.
type Gateway struct {
	sender     Sender
	classifier Classifier
	stats      StatsFetcher
	secret     string
	log        zerolog.Logger
}

func NewGateway(sender Sender, classifier Classifier, stats StatsFetcher, secret string, log zerolog.Logger) *Gateway {
	return &Gateway{
		sender:     sender,
		classifier: classifier,
		stats:      stats,
		secret:     secret,
		log:        log,
	}
}

// Webhook handles POST /api/telegram/webhook.
func (g *Gateway) Webhook(w http.ResponseWriter, r *http.Request) {
	if g.secret != "" && r.Header.Get(secretTokenHeader) != g.secret {
		middleware.WriteError(w, http.StatusUnauthorized, "invalid webhook secret")
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		// Still acknowledged; a malformed update would otherwise be
		// redelivered forever.
		g.log.Warn().Err(err).Msg("undecodable webhook update")
		middleware.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
		return
	}

	switch {
	case update.CallbackQuery != nil:
		g.handleCallback(r.Context(), update.CallbackQuery)
	case update.Message != nil && update.Message.Text != "" && update.Message.From != nil:
		g.handleMessage(r.Context(), update.Message)
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (g *Gateway) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if strings.TrimSpace(msg.Text) == "/start" {
		welcome := tgbotapi.NewMessage(chatID, welcomeText)
		welcome.ParseMode = tgbotapi.ModeHTML
		welcome.ReplyMarkup = menuKeyboard()
		if _, err := g.sender.Send(welcome); err != nil {
			g.log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send welcome")
		}
		return
	}

	fromID := strconv.FormatInt(msg.From.ID, 10)
	result, err := g.classifier.Classify(ctx, msg.Text, fromID)

	var reply string
	switch {
	case err != nil:
		g.log.Error().Err(err).Int64("chat_id", chatID).Msg("extraction call failed")
		reply = "❌ Gagal memproses: permintaan tidak dapat diproses, coba lagi nanti."
	case !result.OK:
		reply = "❌ Gagal memproses: " + result.Error
	default:
		reply = successReply(result)
	}
	g.send(chatID, reply)
}

func (g *Gateway) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if _, err := g.sender.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		g.log.Error().Err(err).Str("callback", cb.Data).Msg("failed to answer callback")
	}
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	switch cb.Data {
	case "menu":
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, cb.Message.MessageID, menuText, menuKeyboard())
		if _, err := g.sender.Send(edit); err != nil {
			g.log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to show menu")
		}
	case "catat":
		g.send(chatID, catatText)
	case "categories":
		g.send(chatID, categoriesText())
	case "help":
		g.send(chatID, helpText)
	case "stats":
		g.send(chatID, g.statsText(ctx))
	}
}

// statsText loads the totals, falling back to a placeholder so a failing
// aggregation endpoint never breaks the chat.
func (g *Gateway) statsText(ctx context.Context) string {
	stats, err := g.stats.FetchStats(ctx)
	if err != nil {
		g.log.Error().Err(err).Msg("stats fetch failed")
		return "Statistik belum tersedia, coba lagi nanti."
	}
	return fmt.Sprintf("📊 Ringkasan keuangan:\n- Pemasukan: %s\n- Pengeluaran: %s\n- Jumlah transaksi: %d",
		extract.FormatRupiah(stats.Income), extract.FormatRupiah(stats.Expense), stats.Count)
}

func (g *Gateway) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := g.sender.Send(msg); err != nil {
		g.log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send reply")
	}
}

// successReply renders the confirmation plus one detail block per item.
func successReply(result *ClassifyResult) string {
	var b strings.Builder
	b.WriteString("✅ ")
	b.WriteString(result.Message)
	b.WriteString("\n\nDetail:")
	for _, it := range result.Items {
		b.WriteString("\n- Deskripsi: ")
		b.WriteString(it.Description)
		b.WriteString("\n- Jumlah: ")
		b.WriteString(extract.FormatRupiah(it.Amount))
		b.WriteString("\n- Kategori: ")
		b.WriteString(it.Category)
	}
	return b.String()
}
