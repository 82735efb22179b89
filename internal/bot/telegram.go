package bot

import (
	"context"
	"io"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const stopCommand = "stop"

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram runs the quiz dialog in a single chat. Messages from other chats are ignored.
type Telegram struct {
	bot     BotSender
	chatID  int64
	updates <-chan tgbotapi.Update
	log     *zap.Logger
}

func NewTelegram(botToken string, chatID int64, env string, log *zap.Logger) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = env == "development"

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	return NewTelegramDialog(bot, chatID, bot.GetUpdatesChan(u), log), nil
}

func NewTelegramDialog(bot BotSender, chatID int64, updates <-chan tgbotapi.Update, log *zap.Logger) *Telegram {
	return &Telegram{
		bot:     bot,
		chatID:  chatID,
		updates: updates,
		log:     log,
	}
}

func (t *Telegram) Send(_ context.Context, text string) error {
	return sendMessage(t.bot, tgbotapi.NewMessage(t.chatID, text), t.log)
}

// Answer waits for the next text message in the chat. /stop and a closed update
// channel both end the dialog with io.EOF.
func (t *Telegram) Answer(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case update, ok := <-t.updates:
			if !ok {
				return "", io.EOF
			}
			msg := update.Message
			if msg == nil || msg.Chat == nil || msg.Chat.ID != t.chatID {
				continue
			}
			if msg.IsCommand() {
				if msg.Command() == stopCommand {
					return "", io.EOF
				}
				t.log.Debug("ignoring command", zap.String("command", msg.Command()))
				continue
			}
			return msg.Text, nil
		}
	}
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable, log *zap.Logger) error {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return err
	}
	log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	return nil
}
