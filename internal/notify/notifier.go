// Package notify delivers the daily charm reminder: a teaser message
// posted to an ntfy.sh-style HTTP webhook on a once-a-day cron schedule.
package notify

import (
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"
)

// Message is one reminder notification.
type Message struct {
	Title string
	Body  string
}

// reminderMessages are the teaser variants for the daily reminder. One is
// picked at random per delivery; none of them spoil the charm itself.
var reminderMessages = []Message{
	{
		Title: "Късметче за деня",
		Body:  "Чашата кафе те чака! Разкрий късмета си за днес.",
	},
	{
		Title: "Добро утро!",
		Body:  "Ново късметче те очаква. Ела да го разкриеш!",
	},
	{
		Title: "Време е за късмет!",
		Body:  "Твоето дневно късметче е готово. Докосни да видиш.",
	},
	{
		Title: "Късметче",
		Body:  "Какво ще ти каже вселената днес? Разкрий късмета си!",
	},
	{
		Title: "Твоят късмет те чака",
		Body:  "Нов ден, ново късметче. Ела да го откриеш!",
	},
}

// RandomMessage picks one reminder teaser uniformly at random.
func RandomMessage() Message {
	return reminderMessages[rand.IntN(len(reminderMessages))]
}

// Notifier posts plain-text HTTP notifications to a webhook URL. The
// primary target is ntfy.sh, but any HTTP endpoint works.
type Notifier struct {
	url    string
	title  string
	client *http.Client
}

// NewNotifier creates a Notifier. title is used as the X-Title header
// unless the message carries its own.
func NewNotifier(webhookURL, title string) *Notifier {
	if title == "" {
		title = "Kysmet"
	}
	return &Notifier{
		url:    webhookURL,
		title:  title,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Post sends msg as a plain-text POST. The message title goes in the
// X-Title header (ntfy convention), prefixed with the configured app
// title.
func (n *Notifier) Post(msg Message) error {
	title := n.title
	if msg.Title != "" {
		title = fmt.Sprintf("%s — %s", n.title, msg.Title)
	}

	req, err := http.NewRequest(http.MethodPost, n.url, strings.NewReader(msg.Body))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("X-Title", title)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: post: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("notify: webhook returned %s", resp.Status)
	}
	return nil
}
