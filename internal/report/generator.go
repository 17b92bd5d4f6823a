// Package report renders the processed snapshots into human-readable
// markdown digests and reports.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adeyemio/NaijaPulse/internal/analytics"
	"github.com/adeyemio/NaijaPulse/internal/processor"
	"github.com/adeyemio/NaijaPulse/internal/storage"
)

// Generator renders reports from the snapshot store into a directory.
type Generator struct {
	store *storage.Store
	dir   string
}

func NewGenerator(store *storage.Store, dir string) (*Generator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}
	return &Generator{store: store, dir: dir}, nil
}

// WeeklyReportJSON is the machine-readable twin of the markdown
// report, for API consumption.
type WeeklyReportJSON struct {
	ReportDate     string                      `json:"report_date"`
	TotalArticles  int                         `json:"total_articles"`
	AvgSentiment   float64                     `json:"avg_sentiment"`
	TrendingTopics []analytics.TrendingKeyword `json:"trending_topics"`
	TopSources     []analytics.NameCount       `json:"top_sources"`
	Insights       []string                    `json:"insights"`
}

// WeeklyReport renders the weekly summary. Missing upstream snapshots
// degrade to a placeholder report; they never fail the run.
func (g *Generator) WeeklyReport(now time.Time) error {
	date := now.UTC().Format("2006-01-02")

	var analyticsDoc storage.AnalyticsDoc
	var trendingDoc storage.TrendingDoc
	var sourcesDoc storage.SourceStatsDoc

	if err := g.readAll(map[string]any{
		storage.FileAnalytics:   &analyticsDoc,
		storage.FileTrending:    &trendingDoc,
		storage.FileSourceStats: &sourcesDoc,
	}); err != nil {
		if errors.Is(err, storage.ErrSnapshotMissing) {
			log.Printf("report: processed snapshots missing, writing placeholder")
			return g.writeFile(fmt.Sprintf("weekly-report-%s.md", date),
				placeholderReport("Weekly Report", date))
		}
		return err
	}

	summary := analyticsDoc.Analytics
	trends := trendingDoc.Trends

	var b strings.Builder
	fmt.Fprintf(&b, "# Nigeria Economic News Weekly Report\n\n")
	fmt.Fprintf(&b, "**Report Period**: %s\n\n", date)

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "- **Total Articles Analyzed**: %d\n", summary.TotalArticles)
	fmt.Fprintf(&b, "- **Overall Sentiment**: %s\n", titleCase(analytics.SentimentLabel(summary.AvgSentiment)))
	if names := sourceNames(summary.TopSources, 3); len(names) > 0 {
		fmt.Fprintf(&b, "- **Most Active Sources**: %s\n", strings.Join(names, ", "))
	}

	b.WriteString("\n## Trending Topics This Week\n\n")
	for i, topic := range capKeywords(trends.TrendingKeywords, 5) {
		fmt.Fprintf(&b, "%d. **%s** - Mentioned %d times (Score: %.2f)\n",
			i+1, titleCase(topic.Keyword), topic.Count, topic.Score)
	}

	b.WriteString("\n## Government Entities in Focus\n\n")
	for i, ent := range capEntities(trends.TrendingEntities, 5) {
		fmt.Fprintf(&b, "%d. **%s** - Mentioned %d times\n", i+1, ent.Entity, ent.Count)
	}

	b.WriteString("\n## Source Performance\n\n")
	b.WriteString("| Source | Articles | Dominant Category | Avg Sentiment |\n")
	b.WriteString("|--------|----------|-------------------|---------------|\n")
	for _, name := range sortedSourceKeys(sourcesDoc.Sources) {
		stats := sourcesDoc.Sources[name]
		fmt.Fprintf(&b, "| %s | %d | %s | %s |\n",
			name, stats.ArticleCount, titleCase(stats.DominantCategory),
			titleCase(analytics.SentimentLabel(stats.AvgSentiment)))
	}

	b.WriteString("\n## Peak News Hours\n\n")
	for _, h := range summary.PeakHours {
		fmt.Fprintf(&b, "- **%02d:00**: %d articles published\n", h.Hour, h.Count)
	}

	insights := buildInsights(summary, trends)
	b.WriteString("\n## Insights\n\n")
	for _, ins := range insights {
		fmt.Fprintf(&b, "- %s\n", ins)
	}
	fmt.Fprintf(&b, "\n---\n*Report generated automatically on %s*\n",
		now.UTC().Format("2006-01-02 15:04 UTC"))

	if err := g.writeFile(fmt.Sprintf("weekly-report-%s.md", date), b.String()); err != nil {
		return err
	}

	jsonReport := WeeklyReportJSON{
		ReportDate:     date,
		TotalArticles:  summary.TotalArticles,
		AvgSentiment:   summary.AvgSentiment,
		TrendingTopics: capKeywords(trends.TrendingKeywords, 5),
		TopSources:     summary.TopSources,
		Insights:       insights,
	}
	data, err := json.MarshalIndent(jsonReport, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal weekly report: %w", err)
	}
	return g.writeFile("weekly-report.json", string(data))
}

// DailyDigest renders today's articles grouped by source.
func (g *Generator) DailyDigest(now time.Time) error {
	feed, err := g.store.ReadNews()
	if err != nil {
		if errors.Is(err, storage.ErrSnapshotMissing) {
			log.Printf("digest: news snapshot missing, writing placeholder")
			date := now.UTC().Format("2006-01-02")
			return g.writeFile(fmt.Sprintf("daily-digest-%s.md", date),
				placeholderReport("Daily Digest", date))
		}
		return err
	}

	today := now.UTC().Format("2006-01-02")
	bySource := make(map[string][]processor.Article)
	total := 0
	for _, a := range feed.Articles {
		if a.PublishedAt.UTC().Format("2006-01-02") != today {
			continue
		}
		bySource[a.Source] = append(bySource[a.Source], a)
		total++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Nigeria Economic News Daily Digest\n\n")
	fmt.Fprintf(&b, "**Date**: %s\n", today)
	fmt.Fprintf(&b, "**Total Articles Today**: %d\n\n", total)
	b.WriteString("## Top Stories Today\n")

	names := make([]string, 0, len(bySource))
	for name := range bySource {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(&b, "\n### %s\n\n", name)
		articles := bySource[name]
		if len(articles) > 3 {
			articles = articles[:3]
		}
		for i, a := range articles {
			fmt.Fprintf(&b, "%d. **%s**\n", i+1, a.Title)
			if s := shorten(a.Summary, 100); s != "" {
				fmt.Fprintf(&b, "   *%s*\n", s)
			}
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "\n---\n*Automatically generated on %s*\n", now.UTC().Format("15:04 UTC"))

	return g.writeFile(fmt.Sprintf("daily-digest-%s.md", today), b.String())
}

func (g *Generator) readAll(docs map[string]any) error {
	for name, v := range docs {
		if err := g.store.ReadJSON(name, v); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeFile(name, content string) error {
	path := filepath.Join(g.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", name, err)
	}
	log.Printf("report saved: %s", path)
	return nil
}

func buildInsights(summary analytics.Summary, trends analytics.TrendSnapshot) []string {
	var insights []string

	if summary.TotalArticles > 100 {
		insights = append(insights, "High volume of economic news indicates active market discussions")
	} else if summary.TotalArticles < 20 {
		insights = append(insights, "Low news volume may indicate slower economic news cycle")
	}

	if summary.AvgSentiment > 0.3 {
		insights = append(insights, "Strong positive sentiment suggests optimistic economic outlook")
	} else if summary.AvgSentiment < -0.3 {
		insights = append(insights, "Strong negative sentiment indicates significant economic concerns")
	}

	if summary.SourcesCount >= 5 {
		insights = append(insights, fmt.Sprintf("Good source diversity with %d active sources", summary.SourcesCount))
	} else {
		insights = append(insights, fmt.Sprintf("Limited source coverage (%d sources), consider adding more", summary.SourcesCount))
	}

	if len(trends.TrendingKeywords) > 0 {
		insights = append(insights, fmt.Sprintf("'%s' is the dominant economic topic",
			titleCase(trends.TrendingKeywords[0].Keyword)))
	}

	if len(summary.PeakHours) > 0 {
		insights = append(insights, fmt.Sprintf("Peak news publishing hour: %02d:00", summary.PeakHours[0].Hour))
	}
	return insights
}

func placeholderReport(kind, date string) string {
	return fmt.Sprintf("# Nigeria Economic News %s\n\n**Date**: %s\n\nNo processed data available for this period.\n", kind, date)
}

func sourceNames(top []analytics.NameCount, n int) []string {
	if len(top) > n {
		top = top[:n]
	}
	names := make([]string, 0, len(top))
	for _, s := range top {
		names = append(names, s.Name)
	}
	return names
}

func sortedSourceKeys(m map[string]analytics.SourceStats) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func capKeywords(kws []analytics.TrendingKeyword, n int) []analytics.TrendingKeyword {
	if len(kws) > n {
		return kws[:n]
	}
	return kws
}

func capEntities(ents []analytics.TrendingEntity, n int) []analytics.TrendingEntity {
	if len(ents) > n {
		return ents[:n]
	}
	return ents
}

func shorten(s string, limit int) string {
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit]) + "..."
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
