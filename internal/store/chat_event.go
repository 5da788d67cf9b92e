package store

import (
	"context"
	"fmt"

	"github.com/apetrov/coursemate/ent"
	"github.com/apetrov/coursemate/ent/chatevent"
)

func (r *eventRepo) AppendChat(ctx context.Context, data ChatEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ChatEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetIntent(data.Intent).
		SetMatchedPattern(data.MatchedPattern).
		SetConfidence(data.Confidence).
		SetReplySource(data.ReplySource).
		SetHandlerFailed(data.HandlerFailed).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save chat event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryChatEvents(ctx context.Context, opts QueryOpts) ([]ChatEvent, error) {
	q := r.client.ChatEvent.Query()

	if opts.After > 0 {
		q = q.Where(chatevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		q = q.Where(chatevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(chatevent.TimestampLTE(opts.To))
	}

	q = q.Order(ent.Desc(chatevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chat events: %w", err)
	}

	events := make([]ChatEvent, len(rows))
	for i, row := range rows {
		events[i] = ChatEvent{
			ID:             row.ID,
			Sequence:       row.Sequence,
			Timestamp:      row.Timestamp,
			SessionID:      row.SessionID,
			Intent:         row.Intent,
			MatchedPattern: row.MatchedPattern,
			Confidence:     row.Confidence,
			ReplySource:    row.ReplySource,
			HandlerFailed:  row.HandlerFailed,
			ErrorMessage:   row.ErrorMessage,
		}
	}
	return events, nil
}
