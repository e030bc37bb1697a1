package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"dbt-dost-be/internal/constant"
	"dbt-dost-be/internal/dto"
	"dbt-dost-be/internal/pkg/logger"
	"dbt-dost-be/internal/repository/memory"
	"dbt-dost-be/pkg/store"
	"dbt-dost-be/pkg/whatsapp"
)

// Messenger is the outbound messaging collaborator
type Messenger interface {
	SendText(ctx context.Context, to, body string) error
	SendButtons(ctx context.Context, to string, msg whatsapp.ButtonMessage) error
	SendList(ctx context.Context, to string, msg whatsapp.ListMessage) error
}

// IConversationService drives the per-user conversation state machine
type IConversationService interface {
	HandleEvent(ctx context.Context, event *dto.InboundEvent)
}

// conversationService sequences menu navigation, FAQ browsing and free-text
// question handling. Each inbound event produces exactly one outbound send
// and at most one state transition, applied under the user's session lock.
type conversationService struct {
	sessions  *memory.SessionRepository
	messenger Messenger
	answerer  Answerer
	logger    logger.ILogger
}

func NewConversationService(
	sessions *memory.SessionRepository,
	messenger Messenger,
	answerer Answerer,
	sysLogger logger.ILogger,
) IConversationService {
	return &conversationService{
		sessions:  sessions,
		messenger: messenger,
		answerer:  answerer,
		logger:    sysLogger,
	}
}

func (cs *conversationService) HandleEvent(ctx context.Context, event *dto.InboundEvent) {
	cs.sessions.Update(event.From, func(session *store.Session) {
		switch event.Kind {
		case dto.EventButtonReply, dto.EventListReply:
			cs.handleReply(ctx, session, event.ReplyID)
		case dto.EventText:
			cs.handleText(ctx, session, event.Text)
		default:
			cs.logger.Debug("conversation", "Ignoring event of unknown kind", map[string]interface{}{
				"kind": string(event.Kind),
			})
		}
	})
}

// handleReply processes one interactive selection. Reply IDs are globally
// unique across menus, so a single dispatch covers buttons and lists.
func (cs *conversationService) handleReply(ctx context.Context, session *store.Session, replyID string) {
	switch {
	case replyID == constant.ReplyLangHindi:
		session.Language = store.LanguageHindi
		session.State = store.StateMainMenu
		cs.sendMainMenu(ctx, session)

	case replyID == constant.ReplyLangEnglish:
		session.Language = store.LanguageEnglish
		session.State = store.StateMainMenu
		cs.sendMainMenu(ctx, session)

	case replyID == constant.ReplyMenuCheckStatus:
		cs.sendText(ctx, session, constant.MessagesFor(session.ResolveLanguage()).CheckStatusMsg)

	case replyID == constant.ReplyMenuHelpSupport:
		cs.sendText(ctx, session, constant.MessagesFor(session.ResolveLanguage()).SupportMsg)

	case replyID == constant.ReplyMenuFAQ, replyID == constant.ReplyContinueFAQ, replyID == constant.ReplyBackToCategories:
		session.State = store.StateAwaitingFAQCategory
		cs.sendCategoryMenu(ctx, session)

	case replyID == constant.ReplyMenuAskQuestion:
		session.State = store.StateAwaitingAIQuery
		cs.sendText(ctx, session, constant.MessagesFor(session.ResolveLanguage()).AskQuestionMsg)

	case replyID == constant.ReplyExitFAQ:
		session.State = store.StateMainMenu
		cs.sendMainMenu(ctx, session)

	case strings.HasPrefix(replyID, constant.ReplyFAQCategoryPrefix):
		key := strings.TrimPrefix(replyID, constant.ReplyFAQCategoryPrefix)
		category, ok := constant.FAQCategoryByKey(key)
		if !ok {
			cs.sendText(ctx, session, constant.CategoryMissMsg)
			return
		}
		session.State = store.StateAwaitingFAQQuestion
		session.CurrentCategory = key
		cs.sendQuestionMenu(ctx, session, category)

	case strings.HasPrefix(replyID, constant.ReplyFAQQuestionPrefix):
		cs.handleQuestionSelection(ctx, session, replyID)

	default:
		cs.logger.Debug("conversation", "Ignoring unknown reply id", map[string]interface{}{
			"reply_id": replyID,
			"state":    session.State,
		})
	}
}

// handleQuestionSelection answers one curated FAQ question and offers the
// continue/exit choice in the same message.
func (cs *conversationService) handleQuestionSelection(ctx context.Context, session *store.Session, replyID string) {
	rest := strings.TrimPrefix(replyID, constant.ReplyFAQQuestionPrefix)
	sep := strings.LastIndexByte(rest, '_')
	if sep <= 0 {
		cs.sendText(ctx, session, constant.FAQAnswerMiss)
		return
	}
	key := rest[:sep]
	idx, err := strconv.Atoi(rest[sep+1:])
	if err != nil {
		cs.sendText(ctx, session, constant.FAQAnswerMiss)
		return
	}

	category, ok := constant.FAQCategoryByKey(key)
	if !ok || idx < 0 || idx >= len(category.Questions) {
		cs.sendText(ctx, session, constant.FAQAnswerMiss)
		return
	}

	msg := constant.MessagesFor(session.ResolveLanguage())
	session.State = store.StateAwaitingContinueOrExit
	cs.send(ctx, session, func(to string) error {
		return cs.messenger.SendButtons(ctx, to, whatsapp.ButtonMessage{
			Body: category.Questions[idx].Answer + "\n\n" + msg.ContinuePrompt,
			Buttons: []whatsapp.Button{
				{ID: constant.ReplyContinueFAQ, Title: msg.ContinueButton},
				{ID: constant.ReplyExitFAQ, Title: msg.ExitButton},
			},
		})
	})
}

func (cs *conversationService) handleText(ctx context.Context, session *store.Session, text string) {
	body := strings.ToLower(strings.TrimSpace(text))

	if isGreeting(body) {
		if session.HasLanguage() {
			session.State = store.StateMainMenu
			cs.sendMainMenu(ctx, session)
		} else {
			session.State = store.StateAwaitingLanguage
			cs.sendLanguageSelection(ctx, session)
		}
		return
	}

	if session.State == store.StateAwaitingAIQuery {
		answer := cs.answerer.Answer(ctx, strings.TrimSpace(text), session.ResolveLanguage())
		session.State = store.StateMainMenu
		cs.sendText(ctx, session, answer)
		return
	}

	if session.HasLanguage() {
		cs.sendText(ctx, session, constant.MessagesFor(session.ResolveLanguage()).InvalidInput)
		return
	}

	session.State = store.StateAwaitingLanguage
	cs.sendLanguageSelection(ctx, session)
}

func isGreeting(body string) bool {
	for _, g := range constant.Greetings {
		if body == g {
			return true
		}
	}
	return false
}

// --- Outbound message construction ---

func (cs *conversationService) sendLanguageSelection(ctx context.Context, session *store.Session) {
	cs.send(ctx, session, func(to string) error {
		return cs.messenger.SendButtons(ctx, to, whatsapp.ButtonMessage{
			Body:           constant.LanguageSelectionBody,
			HeaderImageURL: constant.LogoImageURL,
			Buttons: []whatsapp.Button{
				{ID: constant.ReplyLangHindi, Title: constant.LanguageButtonHindi},
				{ID: constant.ReplyLangEnglish, Title: constant.LanguageButtonEnglish},
			},
		})
	})
}

func (cs *conversationService) sendMainMenu(ctx context.Context, session *store.Session) {
	msg := constant.MessagesFor(session.ResolveLanguage())
	cs.send(ctx, session, func(to string) error {
		return cs.messenger.SendList(ctx, to, whatsapp.ListMessage{
			Body:        msg.MenuBody,
			ButtonLabel: constant.MainMenuButtonLabel,
			Sections: []whatsapp.ListSection{{
				Rows: []whatsapp.ListRow{
					{ID: constant.ReplyMenuCheckStatus, Title: msg.MenuCheckStatus},
					{ID: constant.ReplyMenuFAQ, Title: msg.MenuFAQ},
					{ID: constant.ReplyMenuHelpSupport, Title: msg.MenuHelpSupport},
					{ID: constant.ReplyMenuAskQuestion, Title: msg.MenuAskQuestion},
				},
			}},
		})
	})
}

func (cs *conversationService) sendCategoryMenu(ctx context.Context, session *store.Session) {
	rows := make([]whatsapp.ListRow, 0, len(constant.FAQCategories))
	for _, c := range constant.FAQCategories {
		rows = append(rows, whatsapp.ListRow{
			ID:          constant.ReplyFAQCategoryPrefix + c.Key,
			Title:       c.Title,
			Description: fmt.Sprintf("%d questions", len(c.Questions)),
		})
	}
	cs.send(ctx, session, func(to string) error {
		return cs.messenger.SendList(ctx, to, whatsapp.ListMessage{
			Body:        constant.CategoryMenuBody,
			ButtonLabel: constant.CategoryMenuButtonLabel,
			Sections: []whatsapp.ListSection{{
				Title: constant.CategorySectionTitle,
				Rows:  rows,
			}},
		})
	})
}

func (cs *conversationService) sendQuestionMenu(ctx context.Context, session *store.Session, category constant.FAQCategory) {
	rows := make([]whatsapp.ListRow, 0, len(category.Questions)+1)
	for i, q := range category.Questions {
		rows = append(rows, whatsapp.ListRow{
			ID:    fmt.Sprintf("%s%s_%d", constant.ReplyFAQQuestionPrefix, category.Key, i),
			Title: q.Question,
		})
	}
	rows = append(rows, whatsapp.ListRow{
		ID:          constant.ReplyBackToCategories,
		Title:       constant.BackToCategoriesTitle,
		Description: constant.BackToCategoriesDesc,
	})
	cs.send(ctx, session, func(to string) error {
		return cs.messenger.SendList(ctx, to, whatsapp.ListMessage{
			Body:        fmt.Sprintf(constant.QuestionMenuBodyFmt, category.Title),
			ButtonLabel: constant.QuestionMenuButtonLabel,
			Sections: []whatsapp.ListSection{{
				Title: category.Title,
				Rows:  rows,
			}},
		})
	})
}

func (cs *conversationService) sendText(ctx context.Context, session *store.Session, body string) {
	cs.send(ctx, session, func(to string) error {
		return cs.messenger.SendText(ctx, to, body)
	})
}

func (cs *conversationService) send(ctx context.Context, session *store.Session, sendFn func(to string) error) {
	if err := sendFn(session.UserID); err != nil {
		cs.logger.Error("conversation", "Failed to send message", map[string]interface{}{
			"user_id": session.UserID,
			"error":   err.Error(),
		})
	}
}
