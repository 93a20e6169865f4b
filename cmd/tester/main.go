// Sonde hors ligne : fait passer une batterie de messages
// représentatifs dans le pipeline sans aucun backend, pour vérifier
// que les étages déterministes répondent ce qu'on attend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"pharmabot/canned"
	"pharmabot/classify"
	"pharmabot/domain"
	"pharmabot/domain/profiles"
	"pharmabot/knowledge"
	"pharmabot/observability"
	"pharmabot/runtime"
	"pharmabot/validate"
)

const replyExcerptLimit = 70

var probes = []string{
	"bonjour",
	"merci beaucoup",
	"Quels sont les effets secondaires de Amoxicilline ?",
	"Quel est le mécanisme d'action du Paracétamol ?",
	"Posologie de Metformine",
	"Qu'est-ce qu'un essai clinique de phase III ?",
	"Que signifie AMM ?",
	"Parle-moi de la pharmacovigilance",
	"Comment soigner une infection ?",
	"Quelle est la recette des crêpes ?",
	"Raconte-moi une blague",
	"",
}

func main() {
	profileName := flag.String("profile", "pharma", "Domain profile to probe")
	colours := flag.Bool("colours", true, "Colorize section headers")
	flag.Parse()

	profile, err := profiles.ByName(*profileName)
	if err != nil {
		log.Fatal("Unknown profile: ", err)
	}
	classifier, err := classify.NewClassifier(profile)
	if err != nil {
		log.Fatal("Error while building classifier: ", err)
	}
	base, err := knowledge.NewBase(logs.GetLoggerFromString("error"))
	if err != nil {
		log.Fatal("Error while building knowledge base: ", err)
	}
	defer base.Close()

	monitor := observability.NewMonitor()
	orchestrator := runtime.NewOrchestrator(logs.GetLoggerFromString("error"),
		profile, classifier, canned.NewTable(profile), base,
		validate.NewValidator(classifier, true), nil, monitor, 1)

	printHeader(fmt.Sprintf("  ====== Pipeline probe (%s, no backend) ======", profile.Name), *colours)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Message", "Source", "Reply"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	ctx := context.Background()
	for _, message := range probes {
		reply := orchestrator.Respond(ctx, message, domain.History{})
		table.Append([]string{
			excerpt(message),
			string(reply.Source),
			excerpt(reply.Text),
		})
	}
	table.Render()

	printHeader("  ====== Pipeline counters ======", *colours)
	stats := monitor.Snapshot()
	fmt.Printf("requests=%d canned=%d specific=%d generated=%d fallbacks=%d rejected=%d backend_errors=%d\n",
		stats.Requests, stats.CannedHits, stats.SpecificHits,
		stats.Generated, stats.Fallbacks, stats.Rejected, stats.BackendErrors)
}

func printHeader(header string, colours bool) {
	if colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)
}

func excerpt(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	runes := []rune(text)
	if len(runes) <= replyExcerptLimit {
		return text
	}
	return string(runes[:replyExcerptLimit]) + "…"
}
