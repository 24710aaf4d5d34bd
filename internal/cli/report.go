package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Veraticus/monthly-budget/internal/finance"
	"github.com/Veraticus/monthly-budget/internal/i18n"
	"github.com/Veraticus/monthly-budget/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
)

// ReportOptions controls summary rendering.
type ReportOptions struct {
	Language i18n.Language
	// Color enables ANSI color codes in the expense bar.
	Color bool
	// BarWidth is the width of the expense bar in cells.
	BarWidth int
}

// WriteSummary renders the derived figures, advice and percentage guide.
func WriteSummary(w io.Writer, summary finance.Summary, opts ReportOptions) error {
	t := i18n.For(opts.Language)

	var b strings.Builder
	b.WriteString(FormatTitle(t.AppTitle) + "\n")

	b.WriteString(line(t.TotalIncome, BoldStyle.Render(finance.FormatCurrency(summary.TotalIncome))))
	if summary.HasAdditionalIncome() {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("  %s: %s | %s: %s",
			t.Salary, finance.FormatCurrency(summary.NetSalary),
			t.AdditionalIncomeLabel, finance.FormatCurrency(summary.TotalIncomes))) + "\n")
	}
	b.WriteString(line(t.TotalExpenses, BoldStyle.Render(finance.FormatCurrency(summary.TotalExpenses))))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if summary.HasIncome() {
		label := fmt.Sprintf("%s: %s", t.PercentageLabel,
			TierStyle(summary.Tier).Render(finance.FormatPercent(summary.ExpensePercentage)))
		if _, err := fmt.Fprintln(w, label); err != nil {
			return err
		}
		if err := writeBar(w, summary, opts); err != nil {
			return err
		}
	}

	b.Reset()
	b.WriteString(line(t.AvailableMoney, AvailableStyle(summary.Available).Render(finance.FormatCurrency(summary.Available))))
	b.WriteString(adviceText(summary.Advice, t))
	b.WriteString("\n" + guideText(t))

	_, err := io.WriteString(w, b.String())
	return err
}

func line(label, value string) string {
	return LabelStyle.Render(label) + " " + value + "\n"
}

func adviceText(advice finance.Advice, t i18n.Translations) string {
	switch advice.Kind {
	case finance.AdviceSave:
		return InfoStyle.Render(fmt.Sprintf("%s\n  • %s (%s)\n  • %s\n  • %s %s",
			t.Suggestions,
			t.SuggestSaving, finance.FormatCurrency(advice.Savings),
			t.SuggestEmergency,
			finance.FormatCurrency(advice.Discretionary), t.SuggestRemaining)) + "\n"
	case finance.AdviceReduce:
		return FormatWarning(t.Warning) + "\n" +
			ErrorStyle.Render(fmt.Sprintf("  %s %s", t.WarningMessage, finance.FormatCurrency(advice.Shortfall))) + "\n"
	default:
		return ""
	}
}

func guideText(t i18n.Translations) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		BoldStyle.Render(t.GuideTitle),
		SuccessStyle.Render("  "+t.GuideGood),
		WarningStyle.Render("  "+t.GuideWarning),
		ErrorStyle.Render("  "+t.GuideBad),
	) + "\n"
}

func writeBar(w io.Writer, summary finance.Summary, opts ReportOptions) error {
	width := opts.BarWidth
	if width <= 0 {
		width = 40
	}

	color := "green"
	switch summary.Tier {
	case finance.TierHigh:
		color = "red"
	case finance.TierMedium:
		color = "yellow"
	}
	saucer := "="
	if opts.Color {
		saucer = "[" + color + "]=[reset]"
	}

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(opts.Color),
		progressbar.OptionSetWidth(width),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        saucer,
			SaucerHead:    saucer,
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	if err := bar.Set(int(math.Round(summary.ProgressPercent))); err != nil {
		return fmt.Errorf("failed to render expense bar: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

// WriteItems lists one collection with ids so items can be addressed by
// the remove and set commands.
func WriteItems(w io.Writer, kind model.CollectionKind, items []model.LineItem, lang i18n.Language) error {
	t := i18n.For(lang)
	title := t.FixedExpenses
	if kind == model.KindIncomes {
		title = t.AdditionalIncome
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(title) + "\n")
	if len(items) == 0 {
		b.WriteString(SubtleStyle.Render("  -") + "\n")
	}

	idWidth := 2
	for _, item := range items {
		idWidth = max(idWidth, len(strconv.Itoa(item.ID)))
	}
	idStyle := SubtleStyle.Width(idWidth + 2)
	categoryStyle := lipgloss.NewStyle().Width(28)

	for _, item := range items {
		category := item.Category
		if category == "" {
			category = SubtleStyle.Render(t.CategoryPlaceholder)
		}
		amount := item.Amount
		if amount == "" {
			amount = SubtleStyle.Render("€")
		} else {
			amount = fmt.Sprintf("%s %s", amount, SubtleStyle.Render("("+finance.FormatCurrency(finance.ParseAmount(amount))+")"))
		}
		b.WriteString(idStyle.Render(fmt.Sprintf("#%d", item.ID)) + categoryStyle.Render(category) + amount + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
