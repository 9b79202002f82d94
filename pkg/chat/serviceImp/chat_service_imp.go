package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"farmassist/entities"
	"farmassist/pkg/ai"
	"farmassist/pkg/chat"
	chatrepo "farmassist/pkg/chat/repository"
	"farmassist/pkg/chat/service"
	"farmassist/pkg/dataset"
	datasetrepo "farmassist/pkg/dataset/repository"
	"farmassist/pkg/predict"
	"farmassist/pkg/profile"
	profilerepo "farmassist/pkg/profile/repository"
)

const (
	kbSnippets   = 4
	kbMaxContext = 3000
	maxRefs      = 3

	fallbackPrefix = "I'm having trouble connecting to my AI brain right now, but here's some basic advice: "
)

type kbSearcher interface {
	Search(query string, k int) ([]entities.KBChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.KBDocument, error)
}

type ChatSvc struct {
	llm      ai.Client
	msgs     chatrepo.ChatRepository
	profiles profilerepo.ProfileRepository
	datasets datasetrepo.DatasetRepository
	kb       kbSearcher
}

// NewChatService wires the chat flow. kb may be nil.
func NewChatService(llm ai.Client, msgs chatrepo.ChatRepository, pr profilerepo.ProfileRepository, dr datasetrepo.DatasetRepository, kb kbSearcher) service.ChatService {
	return &ChatSvc{llm: llm, msgs: msgs, profiles: pr, datasets: dr, kb: kb}
}

// Ask answers from the farmer's datasets when the question is a yield or price
// question they have data for, and from the language model otherwise.
func (s *ChatSvc) Ask(ctx context.Context, uid, message string) (*entities.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, chat.ErrEmptyMessage
	}
	if err := s.msgs.Create(&entities.ChatMessage{UserID: uid, Sender: entities.SenderUser, Content: message}); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}

	p, err := s.profiles.FindByUser(uid)
	if err != nil && !errors.Is(err, profile.ErrNotFound) {
		return nil, err
	}
	ds, err := s.datasets.ListByUser(uid)
	if err != nil {
		return nil, err
	}

	var pp predict.Profile
	if p != nil {
		pp = predict.Profile{SoilType: p.SoilType, CropTypes: p.CropTypes}
	}

	bot := &entities.ChatMessage{UserID: uid, Sender: entities.SenderBot}
	if pred := predict.Predict(message, pp, dataset.ForPredict(ds)); pred != nil {
		bot.Source = entities.SourcePrediction
		bot.Content = pred.Format()
		narrative, err := s.llm.Reply(ctx, p, message+"\n\nMy own data analysis says:\n"+bot.Content+"\n\nExplain what this means for my farm.", "")
		if err != nil {
			log.Printf("[chat] llm narrative failed, sending prediction only: %v", err)
		} else {
			bot.Content += "\n\n" + narrative
		}
	} else {
		kbCtx, refs := s.kbContext(message)
		reply, err := s.llm.Reply(ctx, p, message, kbCtx)
		if err != nil {
			log.Printf("[chat] llm failed, using basic advice: %v", err)
			bot.Source = entities.SourceFallback
			bot.Content = fallbackPrefix + ai.BasicAdvice(message)
		} else {
			bot.Source = entities.SourceLLM
			bot.Content = reply
			bot.References = refs
		}
	}

	if err := s.msgs.Create(bot); err != nil {
		return nil, fmt.Errorf("save reply: %w", err)
	}
	return bot, nil
}

// kbContext gathers knowledge base excerpts for the prompt and the articles
// they came from. Search errors only cost the context.
func (s *ChatSvc) kbContext(query string) (string, []entities.ArticleRef) {
	if s.kb == nil {
		return "", nil
	}
	snips, err := s.kb.Search(query, kbSnippets)
	if err != nil {
		log.Printf("[chat] kb search: %v", err)
		return "", nil
	}
	if len(snips) == 0 {
		return "", nil
	}

	var sb strings.Builder
	seen := map[uint]struct{}{}
	ids := make([]uint, 0, len(snips))
	for _, ch := range snips {
		if sb.Len() > kbMaxContext {
			break
		}
		sb.WriteString("\n---\n")
		sb.WriteString(ch.Text)
		if _, ok := seen[ch.DocID]; !ok {
			seen[ch.DocID] = struct{}{}
			ids = append(ids, ch.DocID)
		}
	}

	var refs []entities.ArticleRef
	if meta, err := s.kb.DocsMeta(ids); err == nil {
		for _, id := range ids {
			if d, ok := meta[id]; ok && len(refs) < maxRefs {
				refs = append(refs, entities.ArticleRef{Title: d.Title, URL: d.SourceURL})
			}
		}
	}
	return sb.String(), refs
}

func (s *ChatSvc) History(uid string, limit int) ([]entities.ChatMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.msgs.Recent(uid, limit)
}

func (s *ChatSvc) Clear(uid string) error {
	n, err := s.msgs.DeleteByUser(uid)
	if err != nil {
		return err
	}
	log.Printf("[chat] cleared %d message(s) for %s", n, uid)
	return nil
}

func (s *ChatSvc) Suggestions() chat.Suggestions { return chat.StarterSuggestions() }
