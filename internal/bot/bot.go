// Package bot is a Discord front end for the resume pipeline: post a job and
// get the tailored PDF back.
package bot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/aysaac/easyapply/internal/cleaner"
	"github.com/aysaac/easyapply/internal/ledger"
	"github.com/aysaac/easyapply/pkg/types"
)

const commandPrefix = "!resume"

// duplicateWindow matches the ledger recency rule used when skipping jobs.
const duplicateWindow = 48 * time.Hour

// Resumes is the orchestrator surface the bot calls.
type Resumes interface {
	CreateResume(ctx context.Context, job, company, description string) (types.GeneratedResume, error)
}

type Bot struct {
	session *discordgo.Session
	resumes Resumes
	ledger  *ledger.Ledger
}

func New(token string, resumes Resumes, lgr *ledger.Ledger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	bot := &Bot{
		session: session,
		resumes: resumes,
		ledger:  lgr,
	}
	session.AddHandler(bot.onMessageCreate)
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening Discord session: %w", err)
	}
	slog.Info("bot is running")
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}
	if !strings.HasPrefix(m.Content, commandPrefix) {
		return
	}

	job, company, description, err := parseRequest(m)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Usage: `%s Job Title | Company` with the description below or attached. (%v)", commandPrefix, err))
		return
	}

	go b.processJob(s, m, job, company, description)
}

func (b *Bot) processJob(s *discordgo.Session, m *discordgo.MessageCreate, job, company, description string) {
	slog.Info("processing job posting", "job", job, "company", company)
	s.MessageReactionAdd(m.ChannelID, m.ID, "⏳")

	if b.alreadyApplied(job, company) {
		b.fail(s, m, fmt.Errorf("already applied to this posting recently"))
		return
	}

	artifact, err := b.resumes.CreateResume(context.Background(), job, company, description)
	if err != nil {
		b.fail(s, m, err)
		return
	}

	pdfFile, err := os.Open(artifact.PDFPath)
	if err != nil {
		b.fail(s, m, fmt.Errorf("failed to open generated file: %w", err))
		return
	}
	defer pdfFile.Close()

	if _, err = s.ChannelFileSend(m.ChannelID, filepath.Base(artifact.PDFPath), pdfFile); err != nil {
		b.fail(s, m, fmt.Errorf("failed to send file: %w", err))
		return
	}

	if err := b.record(job, company, artifact.PDFPath); err != nil {
		slog.Warn("failed to record ledger entry", "error", err)
	}

	s.MessageReactionsRemoveAll(m.ChannelID, m.ID)
	s.MessageReactionAdd(m.ChannelID, m.ID, "✅")
	slog.Info("done processing", "job", job, "company", company)
}

// postingID derives the ledger key from the posting itself. Discord message
// IDs are unique per message, so keying on them would never catch a repost
// of the same job.
func postingID(job, company string) string {
	norm := func(s string) string {
		return strings.ToLower(strings.Join(strings.Fields(s), " "))
	}
	return norm(job) + "|" + norm(company)
}

func (b *Bot) alreadyApplied(job, company string) bool {
	if b.ledger == nil {
		return false
	}
	applied, err := b.ledger.Applied(postingID(job, company), duplicateWindow)
	return err == nil && applied
}

func (b *Bot) record(job, company, resumePath string) error {
	if b.ledger == nil {
		return nil
	}
	return b.ledger.Append(ledger.Entry{
		JobID:      postingID(job, company),
		Job:        job,
		Company:    company,
		Attempted:  true,
		ResumePath: resumePath,
	})
}

func (b *Bot) fail(s *discordgo.Session, m *discordgo.MessageCreate, err error) {
	slog.Error("processing error", "error", err)
	s.MessageReactionRemove(m.ChannelID, m.ID, "⏳", s.State.User.ID)
	s.MessageReactionAdd(m.ChannelID, m.ID, "❌")
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Error: %v", err))
}

// parseRequest expects "!resume Job Title | Company" on the first line. The
// description is the rest of the message, or the first .html/.txt attachment
// when the body is empty.
func parseRequest(m *discordgo.MessageCreate) (job, company, description string, err error) {
	content := strings.TrimPrefix(m.Content, commandPrefix)
	header, body, _ := strings.Cut(strings.TrimSpace(content), "\n")

	title, comp, found := strings.Cut(header, "|")
	if !found {
		return "", "", "", fmt.Errorf("missing 'Job Title | Company' header")
	}
	job = strings.TrimSpace(title)
	company = strings.TrimSpace(comp)
	if job == "" || company == "" {
		return "", "", "", fmt.Errorf("empty job title or company")
	}

	description = strings.TrimSpace(body)
	if description == "" {
		description, err = attachmentText(m)
		if err != nil {
			return "", "", "", err
		}
	}
	if description == "" {
		return "", "", "", fmt.Errorf("no job description provided")
	}
	return job, company, description, nil
}

func attachmentText(m *discordgo.MessageCreate) (string, error) {
	for _, att := range m.Attachments {
		ext := filepath.Ext(att.Filename)
		if ext != ".html" && ext != ".txt" {
			continue
		}

		resp, err := http.Get(att.URL)
		if err != nil {
			return "", fmt.Errorf("failed to download attachment: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("attachment download returned %d", resp.StatusCode)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("failed to read attachment: %w", err)
		}

		if ext == ".html" {
			return cleaner.PostingText(string(data)), nil
		}
		return strings.TrimSpace(string(data)), nil
	}
	return "", nil
}
