package runtime

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pharmabot/ai"
	"pharmabot/canned"
	"pharmabot/classify"
	"pharmabot/domain"
	"pharmabot/domain/profiles"
	"pharmabot/knowledge"
	"pharmabot/mocks"
	"pharmabot/observability"
	"pharmabot/validate"
)

func newTestOrchestrator(t *testing.T, attempts int, backends ...ai.Generator) (*Orchestrator, *observability.Monitor) {
	t.Helper()
	profile, err := profiles.ByName("pharma")
	require.NoError(t, err)
	classifier, err := classify.NewClassifier(profile)
	require.NoError(t, err)
	base, err := knowledge.NewBase(slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = base.Close() })

	monitor := observability.NewMonitor()
	orch := NewOrchestrator(slog.Default(), profile, classifier,
		canned.NewTable(profile), base, validate.NewValidator(classifier, false),
		backends, monitor, attempts)
	return orch, monitor
}

func availableBackend(ctrl *gomock.Controller) *mocks.MockGenerator {
	backend := mocks.NewMockGenerator(ctrl)
	backend.EXPECT().Available().Return(true).AnyTimes()
	backend.EXPECT().Name().Return("mock").AnyTimes()
	backend.EXPECT().Model().Return("mock-model").AnyTimes()
	return backend
}

func TestOrchestrator_GreetingIsTerminal(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Aucune attente Generate : un appel backend ferait échouer le test.
	backend := availableBackend(ctrl)
	orch, monitor := newTestOrchestrator(t, 1, backend)

	reply := orch.Respond(context.Background(), "bonjour", nil)
	req.Equal(SourceCanned, reply.Source)
	req.Equal("Bonjour! Comment puis-je vous aider aujourd'hui?", reply.Text)
	req.Equal(uint64(1), monitor.Snapshot().CannedHits)
}

func TestOrchestrator_EmptyMessageShortCircuits(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, _ := newTestOrchestrator(t, 1, availableBackend(ctrl))

	for _, message := range []string{"", "   ", "\n\t"} {
		reply := orch.Respond(context.Background(), message, nil)
		req.Equal(SourceEmpty, reply.Source)
		req.Equal(orch.profile.EmptyReply, reply.Text)
	}
}

func TestOrchestrator_KnowledgeHitIsTerminal(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := availableBackend(ctrl)
	orch, monitor := newTestOrchestrator(t, 1, backend)

	reply := orch.Respond(context.Background(), "Quels sont les effets secondaires de l'amoxicilline ?", nil)
	req.Equal(SourceSpecific, reply.Source)
	req.Contains(reply.Text, "Effets secondaires de Amoxicilline")
	req.Equal(uint64(1), monitor.Snapshot().SpecificHits)
}

func TestOrchestrator_UnknownDrugMechanismAnswered(t *testing.T) {
	req := require.New(t)
	orch, monitor := newTestOrchestrator(t, 1)

	// Molécule absente des fiches : la classe déduite du suffixe
	// fournit quand même le gabarit de mécanisme.
	reply := orch.Respond(context.Background(), "Comment fonctionne la flucloxacilline ?", nil)
	req.Equal(SourceSpecific, reply.Source)
	req.Contains(reply.Text, "antibiotiques")
	req.Contains(reply.Text, "Flucloxacilline")
	req.Equal(uint64(1), monitor.Snapshot().SpecificHits)
}

func TestOrchestrator_NoBackendFallsBackInDomain(t *testing.T) {
	req := require.New(t)
	orch, monitor := newTestOrchestrator(t, 1)

	reply := orch.Respond(context.Background(), "Comment soigner une infection ?", nil)
	req.Equal(SourceFallback, reply.Source)
	req.Equal(orch.profile.GenericReply, reply.Text)
	req.Equal(uint64(1), monitor.Snapshot().Fallbacks)
}

func TestOrchestrator_OffDomainRedirect(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := availableBackend(ctrl)
	orch, _ := newTestOrchestrator(t, 1, backend)

	reply := orch.Respond(context.Background(), "Quelle est la recette des crêpes ?", nil)
	req.Equal(SourceFallback, reply.Source)
	req.Equal(orch.profile.OffDomainReply, reply.Text)
}

func TestOrchestrator_GibberishCandidateRejected(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := availableBackend(ctrl)
	backend.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("xqzvdv cvbnpq wqzxc", nil)
	orch, monitor := newTestOrchestrator(t, 1, backend)

	reply := orch.Respond(context.Background(), "Comment soigner une infection ?", nil)
	req.Equal(SourceFallback, reply.Source)
	req.NotEmpty(reply.Text)
	req.Equal(uint64(1), monitor.Snapshot().Rejected)
}

func TestOrchestrator_BackendPriorityOrder(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := availableBackend(ctrl)
	first.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return("Le paracétamol est un médicament utilisé contre la douleur et la fièvre.", nil)
	// Le second backend ne doit jamais être sollicité.
	second := availableBackend(ctrl)

	orch, monitor := newTestOrchestrator(t, 1, first, second)

	reply := orch.Respond(context.Background(), "Parlez-moi du traitement de la douleur, quel médicament choisir ?", nil)
	req.Equal(SourceGenerated, reply.Source)
	req.Equal("mock", reply.Backend)
	req.Equal("mock-model", reply.Model)
	req.Equal(uint64(1), monitor.Snapshot().Generated)
}

func TestOrchestrator_UnavailableBackendSkippedSilently(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unavailable := mocks.NewMockGenerator(ctrl)
	unavailable.EXPECT().Available().Return(false).AnyTimes()

	ready := availableBackend(ctrl)
	ready.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return("Le paracétamol est un médicament utilisé contre la douleur et la fièvre.", nil)

	orch, monitor := newTestOrchestrator(t, 1, unavailable, ready)

	reply := orch.Respond(context.Background(), "Parlez-moi du traitement de la douleur, quel médicament choisir ?", nil)
	req.Equal(SourceGenerated, reply.Source)
	req.Equal(uint64(0), monitor.Snapshot().BackendErrors)
}

func TestOrchestrator_TwoAttemptsPerBackend(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := availableBackend(ctrl)
	gomock.InOrder(
		backend.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(",,,,,,", nil),
		backend.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return("Le paracétamol est un médicament utilisé contre la douleur et la fièvre.", nil),
	)

	orch, monitor := newTestOrchestrator(t, 2, backend)

	reply := orch.Respond(context.Background(), "Parlez-moi du traitement de la douleur, quel médicament choisir ?", nil)
	req.Equal(SourceGenerated, reply.Source)
	req.Equal(uint64(1), monitor.Snapshot().Rejected)
}

func TestOrchestrator_TotalityOverVariedInputs(t *testing.T) {
	req := require.New(t)
	orch, _ := newTestOrchestrator(t, 1)

	inputs := []string{
		"",
		"bonjour",
		"merci",
		"Quels sont les effets secondaires de l'amoxicilline ?",
		"Qu'est-ce qu'un essai clinique de phase III ?",
		"Quelle est la recette des crêpes ?",
		"Comment soigner une infection ?",
		"??",
		"azertyuiop",
	}
	for _, input := range inputs {
		reply := orch.Respond(context.Background(), input, nil)
		req.NotEmpty(reply.Text, "input %q", input)
	}
}

func TestOrchestrator_MentionedDrugsFeedInteractions(t *testing.T) {
	req := require.New(t)
	orch, _ := newTestOrchestrator(t, 1)

	history := domain.History{
		domain.NewUserMessage("Parle-moi du médicament paracetamol"),
		domain.NewAssistantMessage("Le paracétamol est un antalgique."),
	}
	reply := orch.Respond(context.Background(), "Quelles sont les interactions du médicament ibuprofene ?", history)
	req.Equal(SourceSpecific, reply.Source)
	req.Contains(reply.Text, "Concernant")
	req.Contains(reply.Text, "Paracétamol")
	req.Contains(reply.Text, "Ibuprofène")
}
