package usecases

import (
	"context"
	"errors"
	"time"

	problemdto "github.com/shiken-app/shiken/internal/application/problem/dto"
	"github.com/shiken-app/shiken/internal/application/solve"
	"github.com/shiken-app/shiken/internal/application/solve/dto"
	"github.com/shiken-app/shiken/internal/domain/exam"
	"github.com/shiken-app/shiken/internal/domain/stats"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
	"github.com/shiken-app/shiken/internal/shared/services/markdown"
)

// statsWriteTimeout bounds the detached counter write.
const statsWriteTimeout = 5 * time.Second

type SubmitAnswerCommand struct {
	UserID    uint
	SessionID string
}

// SubmitAnswerUseCase locks in the current selection, grades it and reveals
// the explanation. The accuracy counter write is fire-and-forget: grading
// never fails because the stats store is down.
type SubmitAnswerUseCase struct {
	sessions  *solve.SessionManager
	statsRepo stats.Repository
	renderer  markdown.Service
	logger    logger.Interface
}

func NewSubmitAnswerUseCase(sessions *solve.SessionManager, statsRepo stats.Repository, renderer markdown.Service, logger logger.Interface) *SubmitAnswerUseCase {
	return &SubmitAnswerUseCase{
		sessions:  sessions,
		statsRepo: statsRepo,
		renderer:  renderer,
		logger:    logger,
	}
}

func (uc *SubmitAnswerUseCase) Execute(ctx context.Context, cmd SubmitAnswerCommand) (*dto.SubmitResultDTO, error) {
	entry, ok := uc.sessions.Get(cmd.SessionID, cmd.UserID)
	if !ok {
		return nil, apperrors.NewNotFoundError("session not found")
	}

	entry.Lock()
	defer entry.Unlock()

	session := entry.Session
	current := session.Current()

	answer, err := session.Submit()
	if err != nil {
		switch {
		case errors.Is(err, exam.ErrAlreadySubmitted):
			return nil, apperrors.NewConflictError("answer already submitted")
		case errors.Is(err, exam.ErrNoSelection):
			return nil, apperrors.NewValidationError("no option selected", "select an option before submitting")
		}
		return nil, err
	}

	uc.recordOutcome(stats.Outcome{
		UserID:    cmd.UserID,
		Level:     current.Level(),
		Type:      current.Type(),
		SubType:   current.SubType(),
		IsCorrect: answer.Correct,
	})

	exp := current.Explanation()
	result := &dto.SubmitResultDTO{
		Correct:       answer.Correct,
		SelectedIndex: answer.OptionIndex,
		AnswerIndex:   current.AnswerIndex(),
		Explanation:   problemdto.ExplanationDTO{Ko: exp.Ko, En: exp.En},
	}
	if html, err := uc.renderer.ToHTMLSanitized(exp.Ko); err != nil {
		uc.logger.Warnw("failed to render explanation", "problem_id", current.ID(), "error", err)
	} else {
		result.ExplanationHTML = html
	}
	for _, v := range current.Vocab() {
		result.Vocab = append(result.Vocab, problemdto.VocabEntryDTO{
			Word:    v.Word,
			Reading: v.Reading,
			Meaning: problemdto.VocabMeaningDTO{Ko: v.Meaning.Ko, En: v.Meaning.En},
		})
	}

	return result, nil
}

func (uc *SubmitAnswerUseCase) recordOutcome(outcome stats.Outcome) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), statsWriteTimeout)
		defer cancel()

		if err := uc.statsRepo.RecordOutcome(ctx, outcome); err != nil {
			uc.logger.Warnw("failed to record outcome", "user_id", outcome.UserID, "level", outcome.Level, "error", err)
		}
	}()
}
