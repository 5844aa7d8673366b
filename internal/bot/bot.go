// Package bot exposes the dashboard as Discord slash commands.
package bot

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/aramps/internal/dashboard"
	"github.com/aramps/internal/embeds"
)

// Bot represents the Discord bot.
type Bot struct {
	session  *discordgo.Session
	svc      *dashboard.Service
	guildID  string
	timeout  time.Duration
	commands []*discordgo.ApplicationCommand
}

// New creates a new Bot instance. An empty guildID registers commands
// globally. timeout bounds each team-comp AI call.
func New(token, guildID string, svc *dashboard.Service, timeout time.Duration) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	b := &Bot{session: session, svc: svc, guildID: guildID, timeout: timeout}
	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteractionCreate)
	return b, nil
}

// Start connects to Discord and registers the slash commands.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	log.Info().Msg("connected to Discord")

	if err := b.registerCommands(); err != nil {
		log.Error().Err(err).Msg("register commands failed")
	}
	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() error {
	return b.session.Close()
}

// Connected reports whether the gateway handshake has completed.
func (b *Bot) Connected() bool {
	return b.session.DataReady
}

func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	log.Info().Str("user", event.User.Username).Int("guilds", len(event.Guilds)).Msg("bot ready")
}

// Commands lists the slash commands the bot serves.
func Commands() []*discordgo.ApplicationCommand {
	minGames := 0.0
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "봇 상태 확인",
		},
		{
			Name:        "aram",
			Description: "챔피언별 칼바람 통계 (아이템, 스펠, 룬)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "champion",
					Description:  "챔피언 이름",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
		{
			Name:        "teamcomp",
			Description: "AI 팀 조합 분석",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "champions",
					Description: "챔피언 5명, 쉼표로 구분 (예: 아리, 럭스, 가렌, 징크스, 레오나)",
					Required:    true,
				},
			},
		},
		{
			Name:        "ranking",
			Description: "챔피언 순위",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "by",
					Description: "정렬 기준",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "판수", Value: string(dashboard.RankByGames)},
						{Name: "승률", Value: string(dashboard.RankByWinRate)},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "min_games",
					Description: "최소 게임수",
					MinValue:    &minGames,
				},
			},
		},
	}
}

func (b *Bot) registerCommands() error {
	registered, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.guildID, Commands())
	if err != nil {
		return err
	}
	b.commands = registered
	log.Info().Int("count", len(registered)).Str("guild", b.guildID).Msg("registered commands")
	return nil
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "ping":
			b.handlePing(s, i)
		case "aram":
			b.handleAram(s, i)
		case "teamcomp":
			b.handleTeamComp(s, i)
		case "ranking":
			b.handleRanking(s, i)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handleAutocomplete(s, i)
	}
}

func (b *Bot) handlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	latency := s.HeartbeatLatency().Milliseconds()
	d := b.svc.Data()
	embed := embeds.Success(
		fmt.Sprintf("🏓 Pong! 지연 **%dms** · 챔피언 **%d** · 행 **%d**", latency, len(d.Champions), len(d.Rows)),
		"✅ 정상 동작 중",
	)
	respond(s, i, embed, false)
}

// optionMap indexes the top-level options of a command by name.
func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) {
	data := &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Error().Err(err).Msg("error responding to interaction")
	}
}

func editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		log.Error().Err(err).Msg("error editing interaction response")
	}
}
