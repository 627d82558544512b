package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/application/dto"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/entities"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("94"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	alertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	captionStyle = lipgloss.NewStyle().
			Faint(true)
)

// statusStyles maps each classification to its rendering style. The mapping
// is explicit, keyed by the status value itself, so the renderer never
// resolves display behavior by name lookup.
var statusStyles = map[entities.KpiStatus]lipgloss.Style{
	entities.StatusOptimal:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34")),
	entities.StatusWarning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
	entities.StatusCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
}

// statusBadges maps each classification to its traffic-light badge
var statusBadges = map[entities.KpiStatus]string{
	entities.StatusOptimal:  "🟢",
	entities.StatusWarning:  "🟡",
	entities.StatusCritical: "🔴",
}

// generateTextOutput renders the dashboard to stdout
func generateTextOutput(snapshot *dto.DashboardSnapshot, config Config) error {
	fmt.Println(RenderText(snapshot, config))
	return nil
}

// RenderText builds the terminal dashboard for a snapshot
func RenderText(snapshot *dto.DashboardSnapshot, config Config) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("☕ Candour Coffee | Operations Dashboard"))
	b.WriteString("\n\n")

	for _, alert := range snapshot.Alerts {
		b.WriteString(alertStyle.Render("🚨 ALERT: " + alert))
		b.WriteString("\n")
	}
	if len(snapshot.Alerts) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render("1. Inventory Strategy & Liquidity"))
	b.WriteString("\n")
	b.WriteString(renderInventory(snapshot))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("2. Real-Time Production Visibility"))
	b.WriteString("\n")
	b.WriteString(renderKPIs(snapshot))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("3. Productivity Trend"))
	b.WriteString("\n")
	b.WriteString(renderTrend(snapshot))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("4. Scalability Simulation"))
	b.WriteString("\n")
	b.WriteString(renderCapacity(snapshot))

	if snapshot.Recommendation != "" {
		b.WriteString("\n")
		b.WriteString(captionStyle.Render("💡 " + snapshot.Recommendation))
		b.WriteString("\n")
	}

	if config.Verbose {
		b.WriteString(captionStyle.Render(
			fmt.Sprintf("Generated at %s in %v", snapshot.GeneratedAt.Format("15:04:05"), config.RenderTime)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderInventory builds the stock / EOQ / safety stock cards
func renderInventory(snapshot *dto.DashboardSnapshot) string {
	health := statusStyles[entities.StatusOptimal].Render("Healthy")
	if snapshot.Inventory.NeedsReorder {
		health = statusStyles[entities.StatusCritical].Render("Reorder now")
	}

	stock := cardStyle.Render(fmt.Sprintf("Warehouse Stock\n%s kg\n%s",
		snapshot.Inputs.CurrentStockKg, health))
	eoq := cardStyle.Render(fmt.Sprintf("Optimal Order (EOQ)\n%s kg\nMinimizes holding vs. ordering cost",
		snapshot.Inventory.RecommendedOrderQty))
	safety := cardStyle.Render(fmt.Sprintf("Safety Stock\n%s kg\nBuffer for supply variability",
		snapshot.SafetyStockKg))

	return lipgloss.JoinHorizontal(lipgloss.Top, stock, " ", eoq, " ", safety) + "\n"
}

// renderKPIs builds the traffic-light metric cards
func renderKPIs(snapshot *dto.DashboardSnapshot) string {
	cycle := cardStyle.Render(fmt.Sprintf("Cycle Time\n%v s (Δ %+.1f s)\n%s",
		snapshot.CycleTime.Value,
		snapshot.CycleTimeDeltaSeconds,
		renderStatus(snapshot.CycleTime.Status)))
	defect := cardStyle.Render(fmt.Sprintf("Defect Rate\n%v %%\n%s",
		snapshot.DefectRate.Value,
		renderStatus(snapshot.DefectRate.Status)))
	throughput := cardStyle.Render(fmt.Sprintf("Hourly Throughput\n%d units\nCurrent productivity ceiling",
		snapshot.HourlyThroughput))

	return lipgloss.JoinHorizontal(lipgloss.Top, cycle, " ", defect, " ", throughput) + "\n"
}

// renderStatus formats a classification with its badge and color
func renderStatus(status entities.KpiStatus) string {
	return statusBadges[status] + " " + statusStyles[status].Render(status.String())
}

// renderTrend builds the hourly cycle-time table with severity marks
func renderTrend(snapshot *dto.DashboardSnapshot) string {
	if len(snapshot.Trend) == 0 {
		return captionStyle.Render("No trend data available") + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %-16s\n", "Hour", "Cycle Time (s)")
	for _, point := range snapshot.Trend {
		marker := ""
		if point.CycleTimeSeconds >= snapshot.CycleTime.Bounds.Red {
			marker = "  " + statusBadges[entities.StatusCritical]
		} else if point.CycleTimeSeconds >= snapshot.CycleTime.Bounds.Yellow {
			marker = "  " + statusBadges[entities.StatusWarning]
		}
		fmt.Fprintf(&b, "%-6s %-16v%s\n", point.Hour, point.CycleTimeSeconds, marker)
	}
	return b.String()
}

// renderCapacity builds the per-stage capacity table with proportional bars
func renderCapacity(snapshot *dto.DashboardSnapshot) string {
	if len(snapshot.Capacity) == 0 {
		return captionStyle.Render("No stages configured") + "\n"
	}

	maxCapacity := 0.0
	for _, result := range snapshot.Capacity {
		if result.DailyCapacityUnits > maxCapacity {
			maxCapacity = result.DailyCapacityUnits
		}
	}

	const barWidth = 40
	var b strings.Builder
	for _, result := range snapshot.Capacity {
		filled := 0
		if maxCapacity > 0 {
			filled = int(result.DailyCapacityUnits / maxCapacity * barWidth)
		}
		fmt.Fprintf(&b, "%-22s %s %.0f units/shift\n",
			result.StageName,
			strings.Repeat("█", filled),
			result.DailyCapacityUnits)
	}
	return b.String()
}
