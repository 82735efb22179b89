package mock_bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

type MockBot struct {
	SentMessages []tgbotapi.Chattable
	Err          error
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m.Err != nil {
		return tgbotapi.Message{}, m.Err
	}
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}}, nil
}

func (m *MockBot) Texts() []string {
	var texts []string
	for _, c := range m.SentMessages {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

func ClearSentMessages(bot *MockBot) {
	bot.SentMessages = nil
}
