// Shell interactif : une seule fenêtre, un envoi déclenche une
// exécution synchrone du pipeline qui bloque l'UI jusqu'au rendu.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"

	"pharmabot/canned"
	"pharmabot/classify"
	"pharmabot/domain"
	"pharmabot/domain/profiles"
	"pharmabot/internal"
	"pharmabot/knowledge"
	"pharmabot/observability"
	"pharmabot/runtime"
	"pharmabot/services"
	"pharmabot/validate"
)

// Le shell interactif tolère deux essais par backend avant de passer
// au suivant, l'utilisateur attend déjà devant son terminal.
const attemptsPerBackend = 2

type chatConfig struct {
	Profile            string        `default:"pharma"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"warn"`
	PreferRemote       bool          `envconfig:"PREFER_REMOTE" default:"true"`
	APIType            string        `envconfig:"API_TYPE" default:"openai"`
	OpenAIAPIKey       string        `envconfig:"OPENAI_API_KEY"`
	GeminiAPIKey       string        `envconfig:"GEMINI_API_KEY"`
	OpenAIModel        string        `envconfig:"OPENAI_MODEL" default:"gpt-3.5-turbo"`
	LocalEndpoint      string        `envconfig:"LOCAL_ENDPOINT" default:"http://localhost:11434"`
	LocalModel         string        `envconfig:"LOCAL_MODEL" default:"mistral:7b"`
	LocalFallbackModel string        `envconfig:"LOCAL_FALLBACK_MODEL" default:"phi3:mini"`
	RemoteTimeout      time.Duration `envconfig:"REMOTE_TIMEOUT" default:"30s"`
	LocalTimeout       time.Duration `envconfig:"LOCAL_TIMEOUT" default:"60s"`
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	userStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type replyMsg runtime.Reply

type chatModel struct {
	textinput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model

	service   services.IChatService
	history   domain.History
	isLoading bool
	status    string
	ready     bool
	width     int
}

func initialModel(service services.IChatService) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Votre question... (Entrée pour envoyer, Ctrl+C pour quitter)"
	ti.Focus()
	ti.Prompt = "│ "
	ti.CharLimit = 1024
	ti.Width = 80

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	vp := viewport.New(80, 20)
	vp.SetContent("")

	return chatModel{
		textinput: ti,
		viewport:  vp,
		spinner:   sp,
		service:   service,
		status:    "Ctrl+L efface l'historique, Ctrl+E exporte la conversation.",
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlL:
			m.history = nil
			m.viewport.SetContent("")
			m.status = "Historique effacé."
			return m, nil

		case tea.KeyCtrlE:
			m.status = m.exportConversation()
			return m, nil

		case tea.KeyEnter:
			if !m.isLoading {
				return m.handleSubmit()
			}
		}

		if !m.isLoading {
			m.textinput, tiCmd = m.textinput.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		headerHeight, footerHeight := 2, 4
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.textinput.Width = msg.Width - 4
		m.viewport.SetContent(m.renderHistory())

	case spinner.TickMsg:
		if m.isLoading {
			m.spinner, spCmd = m.spinner.Update(msg)
			return m, spCmd
		}

	case replyMsg:
		m.isLoading = false
		m.history = m.history.Append(domain.NewAssistantMessage(msg.Text))
		if msg.Source == runtime.SourceGenerated {
			m.status = fmt.Sprintf("Réponse générée par %s (%s).", msg.Backend, msg.Model)
		} else {
			m.status = fmt.Sprintf("Réponse %s.", string(msg.Source))
		}
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
	}

	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

func (m chatModel) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textinput.Value())
	if input == "" {
		return m, nil
	}

	history := m.history
	m.history = m.history.Append(domain.NewUserMessage(input))
	m.textinput.Reset()
	m.isLoading = true
	m.status = "Génération en cours..."
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()

	service := m.service
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		// Appel bloquant : pas d'annulation, un backend lent retarde
		// simplement le prochain rendu.
		return replyMsg(service.Reply(context.Background(), input, history))
	})
}

func (m chatModel) exportConversation() string {
	if len(m.history) == 0 {
		return "Rien à exporter."
	}
	conversation := domain.NewConversation(m.history)
	data, err := conversation.ExportJSON()
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("Export impossible : %v", err))
	}
	filename := conversation.ExportFilename()
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return errorStyle.Render(fmt.Sprintf("Export impossible : %v", err))
	}
	return fmt.Sprintf("Conversation exportée : %s", filename)
}

func (m chatModel) renderHistory() string {
	var b strings.Builder
	for _, msg := range m.history {
		switch msg.Role {
		case domain.RoleUser:
			b.WriteString(userStyle.Render("Vous : ") + msg.Content + "\n\n")
		case domain.RoleAssistant:
			b.WriteString(assistantStyle.Render("Assistant : ") + msg.Content + "\n\n")
		}
	}
	return b.String()
}

func (m chatModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Assistant Pharma/MedTech") + "\n\n")
	b.WriteString(m.viewport.View() + "\n")
	if m.isLoading {
		b.WriteString(m.spinner.View() + " Génération en cours...\n")
	} else {
		b.WriteString(m.textinput.View() + "\n")
	}
	b.WriteString(statusStyle.Render(m.status) + "\n")
	return b.String()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg chatConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	profile, err := profiles.ByName(cfg.Profile)
	if err != nil {
		return fmt.Errorf("profile error: %w", err)
	}
	classifier, err := classify.NewClassifier(profile)
	if err != nil {
		return fmt.Errorf("classifier build failed: %w", err)
	}
	base, err := knowledge.NewBase(log)
	if err != nil {
		return fmt.Errorf("knowledge base build failed: %w", err)
	}
	defer func() { _ = base.Close() }()

	// Chargement unique du backend local avant le premier rendu.
	backends := internal.Backends(context.Background(), internal.Config{
		Profile:            cfg.Profile,
		PreferRemote:       cfg.PreferRemote,
		APIType:            cfg.APIType,
		OpenAIAPIKey:       cfg.OpenAIAPIKey,
		GeminiAPIKey:       cfg.GeminiAPIKey,
		OpenAIModel:        cfg.OpenAIModel,
		LocalEndpoint:      cfg.LocalEndpoint,
		LocalModel:         cfg.LocalModel,
		LocalFallbackModel: cfg.LocalFallbackModel,
		RemoteTimeout:      cfg.RemoteTimeout,
		LocalTimeout:       cfg.LocalTimeout,
	}, log)

	monitor := observability.NewMonitor()
	orchestrator := runtime.NewOrchestrator(log, profile, classifier,
		canned.NewTable(profile), base, validate.NewValidator(classifier, true),
		backends, monitor, attemptsPerBackend)
	service := services.NewChatService(orchestrator, monitor)

	program := tea.NewProgram(initialModel(service), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
