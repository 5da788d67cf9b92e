package store

import (
	"context"
	"fmt"

	"github.com/apetrov/coursemate/ent"
	"github.com/apetrov/coursemate/ent/advicesession"
)

// sessionRepo implements SessionRepo backed by ent.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*Session, error) {
	row, err := r.client.AdviceSession.Query().
		Where(advicesession.SessionID(sessionID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", sessionID, err)
	}

	return &Session{
		ID:           row.SessionID,
		Flow:         row.Flow,
		CurrentStep:  row.CurrentStep,
		Answers:      row.Answers,
		Terminal:     row.Terminal,
		LastActivity: row.LastActivity,
	}, nil
}

func (r *sessionRepo) Put(ctx context.Context, sess *Session) error {
	existing, err := r.client.AdviceSession.Query().
		Where(advicesession.SessionID(sess.ID)).
		Only(ctx)

	switch {
	case ent.IsNotFound(err):
		_, err = r.client.AdviceSession.Create().
			SetSessionID(sess.ID).
			SetFlow(sess.Flow).
			SetCurrentStep(sess.CurrentStep).
			SetAnswers(sess.Answers).
			SetTerminal(sess.Terminal).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create session %s: %w", sess.ID, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("lookup session %s: %w", sess.ID, err)
	}

	_, err = existing.Update().
		SetFlow(sess.Flow).
		SetCurrentStep(sess.CurrentStep).
		SetAnswers(sess.Answers).
		SetTerminal(sess.Terminal).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session %s: %w", sess.ID, err)
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, sessionID string) error {
	_, err := r.client.AdviceSession.Delete().
		Where(advicesession.SessionID(sessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}
