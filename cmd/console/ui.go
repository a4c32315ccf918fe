package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/mathbrain/pkg/dialog"
)

const (
	AgentName       = "Алиса"
	PlaceHolderText = "Ответьте навыку..."
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

// line is one entry of the transcript.
type line struct {
	user bool
	text string
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config       *ConsoleConfig
	client       *http.Client
	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error
	loading      bool
	status       string

	// Dialogue state threaded between turns
	sessionID  string
	messageID  int
	state      map[string]json.RawMessage
	buttons    []dialog.Button
	transcript []line
	ended      bool

	// Quit confirmation state
	showQuitModal bool

	// Progress bar state
	progressTick int
}

type turnResponseMsg struct {
	response *dialog.Response
	err      error
}

type progressTickMsg struct{}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	skillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")) // purple

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

// speechMarkup matches audio and pause markers, which only make sense to a speaker.
var speechMarkup = regexp.MustCompile(`<speaker[^>]*>|sil <\[\d+\]>`)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 300
	ta.SetWidth(50)
	ta.SetHeight(2)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:       cfg,
		client:       client,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: metaVp,
		sessionID:    uuid.NewString(),
		loading:      true,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	// An empty first utterance opens the session, as the platform does.
	return tea.Batch(textarea.Blink, m.sendTurn(""), progressTick())
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.7) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 6
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(chatWidth - 4)
		m.ready = true

		m.writeChatContent()
		m.metaViewport.SetContent(m.writeMetadata())

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}
			return m.say(input)
		}

	case turnResponseMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.applyResponse(msg.response)
		}
		m.writeChatContent()
		m.metaViewport.SetContent(m.writeMetadata())
		return m, nil

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			m.writeChatContent()
			return m, progressTick()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

// say sends an utterance to the skill and records it in the transcript.
func (m ConsoleUI) say(text string) (tea.Model, tea.Cmd) {
	if m.ended {
		m.status = "Сессия завершена. /new начинает новую."
		m.writeChatContent()
		return m, nil
	}
	m.transcript = append(m.transcript, line{user: true, text: text})
	m.loading = true
	m.progressTick = 0
	m.writeChatContent()
	return m, tea.Batch(m.sendTurn(text), progressTick())
}

func (m *ConsoleUI) applyResponse(resp *dialog.Response) {
	m.messageID++
	m.transcript = append(m.transcript, line{text: resp.Response.Text})
	m.buttons = resp.Response.Buttons
	m.ended = resp.EndSession || resp.Response.EndSession

	state, err := stateOf(resp)
	if err != nil {
		m.err = err
		return
	}
	m.state = state
}

func (m ConsoleUI) sendTurn(text string) tea.Cmd {
	req := newRequest(m.sessionID, m.messageID, text, m.state)
	return func() tea.Msg {
		resp, err := sendTurn(m.client, m.config.WebhookURL(), req)
		return turnResponseMsg{resp, err}
	}
}

func (m ConsoleUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	cmd := strings.ToLower(strings.TrimSpace(input))
	m.status = ""

	if n, err := strconv.Atoi(strings.TrimPrefix(cmd, "/")); err == nil {
		if n < 1 || n > len(m.buttons) {
			m.status = fmt.Sprintf("Нет кнопки %d", n)
			m.writeChatContent()
			return m, nil
		}
		b := m.buttons[n-1]
		if b.URL != "" {
			m.status = "Ссылка: " + b.URL
			m.writeChatContent()
			return m, nil
		}
		return m.say(b.Title)
	}

	switch cmd {
	case "/help":
		m.status = "/1../9 нажать кнопку • /state состояние сессии • /copy скопировать диалог • /new новая сессия • Ctrl+C выход"

	case "/state":
		data, err := json.MarshalIndent(m.state, "", "  ")
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = string(data)
		}

	case "/copy":
		if err := clipboardWriteAll(m.transcriptText()); err != nil {
			m.status = "Не удалось скопировать диалог: " + err.Error()
		} else {
			m.status = "Диалог скопирован в буфер обмена"
		}

	case "/new":
		m.sessionID = uuid.NewString()
		m.messageID = 0
		m.state = nil
		m.buttons = nil
		m.ended = false
		m.transcript = nil
		m.loading = true
		m.writeChatContent()
		return m, tea.Batch(m.sendTurn(""), progressTick())

	default:
		m.status = "Неизвестная команда, /help покажет список"
	}

	m.writeChatContent()
	return m, nil
}

// transcriptText is the plain dialogue, as copied by /copy.
func (m ConsoleUI) transcriptText() string {
	var b strings.Builder
	for _, l := range m.transcript {
		if l.user {
			b.WriteString("> ")
		}
		b.WriteString(l.text)
		b.WriteString("\n")
	}
	return b.String()
}

// writeChatContent builds the chat content for the current viewport width
func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6
	if chatWidth < 20 {
		chatWidth = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("МАТЕМАТИЧЕСКИЙ ТРЕНАЖЁР") + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", chatWidth-6)) + "\n\n")

	for _, l := range m.transcript {
		if l.user {
			content.WriteString(userStyle.Render("Вы: ") + wordwrap.String(l.text, chatWidth-6) + "\n\n")
			continue
		}
		content.WriteString(skillStyle.Render(AgentName+": ") + wordwrap.String(stripSpeech(l.text), chatWidth-8) + "\n\n")
	}

	if len(m.buttons) > 0 && !m.loading {
		for i, b := range m.buttons {
			content.WriteString(buttonStyle.Render(fmt.Sprintf("[/%d] %s", i+1, b.Title)) + "\n")
		}
		content.WriteString("\n")
	}

	if m.ended {
		content.WriteString(promptStyle.Render("Сессия завершена. /new начинает новую.") + "\n\n")
	}
	if m.err != nil {
		content.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n\n")
	}
	if m.status != "" {
		content.WriteString(promptStyle.Render(wordwrap.String(m.status, chatWidth-6)) + "\n\n")
	}
	if m.loading {
		content.WriteString(m.renderProgressBar())
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

func (m ConsoleUI) writeMetadata() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("СЕССИЯ") + "\n\n")

	content.WriteString("Session ID:\n")
	content.WriteString(m.sessionID[:8] + "...\n\n")

	content.WriteString("Message:\n")
	content.WriteString(strconv.Itoa(m.messageID) + "\n\n")

	for _, key := range []string{"scenario", "points", "questionNumber"} {
		if v, ok := m.state[key]; ok {
			content.WriteString(key + ":\n" + string(v) + "\n\n")
		}
	}

	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• /help: Help\n")
	content.WriteString("• /state: State\n")

	return content.String()
}

func stripSpeech(text string) string {
	return strings.TrimSpace(speechMarkup.ReplaceAllString(text, ""))
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y", "д", "Д":
				return m, tea.Quit
			case "n", "N", "н", "Н":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Выйти?"))
	content.WriteString("\n\n")
	content.WriteString("Закончить тренировку и закрыть консоль?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Y выйти, N продолжить, Ctrl+C выйти сразу"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.7) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", chatWidth-4)),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}

// renderProgressBar creates an animated progress bar for loading states
func (m ConsoleUI) renderProgressBar() string {
	usable := m.chatViewport.Width - 6
	if usable > 60 {
		usable = 60
	} else if usable < 10 {
		usable = 10
	}

	const totalFrames = 20
	frame := m.progressTick % totalFrames
	filled := (frame * usable) / totalFrames

	var bar strings.Builder
	for i := 0; i < usable; i++ {
		if i < filled {
			bar.WriteString("█")
		} else {
			bar.WriteString("░")
		}
	}
	return separatorStyle.Render(bar.String())
}

// progressTick creates a command that sends a progress tick message
func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}
