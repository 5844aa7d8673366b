// Package embeds builds Discord embeds for dashboard answers.
package embeds

import (
	"fmt"
	"strings"

	"github.com/aramps/internal/dashboard"
	"github.com/aramps/internal/stats"
	"github.com/bwmarrin/discordgo"
)

// Colors for embeds
const (
	ColorWin     = 0x00FF00 // Green
	ColorLose    = 0xFF0000 // Red
	ColorInfo    = 0x3498DB // Blue
	ColorWarning = 0xFFFF00 // Yellow
	ColorGold    = 0xC89A3A
)

// Discord rejects embeds over these sizes.
const (
	maxFieldValue  = 1024
	maxDescription = 4096
)

// Number of rows shown per section; the web page shows the full tables.
const (
	embedItems  = 6
	embedCombos = 3
)

// Success creates a success embed.
func Success(message, title string) *discordgo.MessageEmbed {
	if title == "" {
		title = "✅ 완료"
	}
	return &discordgo.MessageEmbed{Title: title, Description: message, Color: ColorWin}
}

// Error creates an error embed.
func Error(message, title string) *discordgo.MessageEmbed {
	if title == "" {
		title = "❌ 오류"
	}
	return &discordgo.MessageEmbed{Title: title, Description: message, Color: ColorLose}
}

// Warning creates a warning embed.
func Warning(message, title string) *discordgo.MessageEmbed {
	if title == "" {
		title = "⚠️ 확인 필요"
	}
	return &discordgo.MessageEmbed{Title: title, Description: message, Color: ColorWarning}
}

// Info creates an info embed.
func Info(message, title string) *discordgo.MessageEmbed {
	if title == "" {
		title = "ℹ️ 안내"
	}
	return &discordgo.MessageEmbed{Title: title, Description: message, Color: ColorInfo}
}

// Champion renders a champion view as a single embed.
func Champion(v *dashboard.ChampionView) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📊 " + v.Champion,
		Color: ColorGold,
		Description: fmt.Sprintf("게임수 **%d** · 승률 **%.2f%%** · 픽률 **%.2f%%**",
			v.Summary.Games, v.Summary.WinRate, v.Summary.PickRate),
		Fields: make([]*discordgo.MessageEmbedField, 0, 3),
	}
	if v.Icon != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: v.Icon}
	}

	embed.Fields = append(embed.Fields,
		section("🗡️ 추천 아이템", v.ItemsNotice, ItemLines(v.Items, embedItems)),
		section("✨ 추천 스펠 조합", v.SpellsNotice, PairLines(v.Spells, embedCombos)),
		section("🔮 추천 룬 조합", v.RunesNotice, PairLines(v.Runes, embedCombos)),
	)
	embed.Footer = &discordgo.MessageEmbedFooter{Text: "ARAM PS Dashboard"}
	return embed
}

// TeamComp renders AI commentary for a team.
func TeamComp(res *dashboard.TeamCompResult) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🧠 " + strings.Join(res.Team, " · "),
		Description: Truncate(res.Text, maxDescription),
		Color:       ColorInfo,
	}
	if len(res.Icons) > 0 && res.Icons[0] != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: res.Icons[0]}
	}
	if res.Cached {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "캐시된 분석"}
	}
	return embed
}

func section(name, notice string, lines []string) *discordgo.MessageEmbedField {
	value := notice
	switch {
	case notice != "":
	case len(lines) == 0:
		value = "데이터 없음"
	default:
		value = strings.Join(lines, "\n")
	}
	return &discordgo.MessageEmbedField{Name: name, Value: Truncate(value, maxFieldValue)}
}

// ItemLines formats the first n items as "1. name - 12픽 · 58.33%".
func ItemLines(items []stats.SingleStat, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	lines := make([]string, 0, len(items))
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%d. **%s** - %d픽 · %.2f%%", i+1, it.Name, it.TotalPicks, it.WinRate))
	}
	return lines
}

// PairLines formats the first n pairs as "1. a + b - 8게임 · 62.50%".
func PairLines(pairs []stats.PairStat, n int) []string {
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	lines := make([]string, 0, len(pairs))
	for i, p := range pairs {
		lines = append(lines, fmt.Sprintf("%d. **%s** + **%s** - %d게임 · %.2f%%", i+1, orDash(p.NameA), orDash(p.NameB), p.Games, p.WinRate))
	}
	return lines
}

// Truncate cuts s to at most max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Ranking renders a champion ranking, one line per champion.
func Ranking(entries []dashboard.RankEntry, by dashboard.RankBy, minGames int) *discordgo.MessageEmbed {
	title := "🏆 판수 순위"
	if by == dashboard.RankByWinRate {
		title = "🏆 승률 순위"
	}
	embed := &discordgo.MessageEmbed{
		Title:  title,
		Color:  0xF1C40F,
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("최소 %d게임", minGames)},
	}
	if len(entries) == 0 {
		embed.Description = "데이터 없음"
		return embed
	}

	var sb strings.Builder
	for idx, e := range entries {
		fmt.Fprintf(&sb, "%s **%s**\n┗ %d게임 • `%.2f%%` • 픽률 %.2f%%\n", medal(idx), e.Name, e.Summary.Games, e.Summary.WinRate, e.Summary.PickRate)
	}
	embed.Description = Truncate(sb.String(), maxDescription)
	return embed
}

func medal(idx int) string {
	switch idx {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return fmt.Sprintf("`%d.`", idx+1)
	}
}
