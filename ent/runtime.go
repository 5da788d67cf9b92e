// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/apetrov/coursemate/ent/advicesession"
	"github.com/apetrov/coursemate/ent/chatevent"
	"github.com/apetrov/coursemate/ent/course"
	"github.com/apetrov/coursemate/ent/llmrequestevent"
	"github.com/apetrov/coursemate/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	advicesessionFields := schema.AdviceSession{}.Fields()
	_ = advicesessionFields
	// advicesessionDescFlow is the schema descriptor for flow field.
	advicesessionDescFlow := advicesessionFields[1].Descriptor()
	// advicesession.DefaultFlow holds the default value on creation for the flow field.
	advicesession.DefaultFlow = advicesessionDescFlow.Default.(string)
	// advicesessionDescCurrentStep is the schema descriptor for current_step field.
	advicesessionDescCurrentStep := advicesessionFields[2].Descriptor()
	// advicesession.DefaultCurrentStep holds the default value on creation for the current_step field.
	advicesession.DefaultCurrentStep = advicesessionDescCurrentStep.Default.(int)
	// advicesessionDescTerminal is the schema descriptor for terminal field.
	advicesessionDescTerminal := advicesessionFields[4].Descriptor()
	// advicesession.DefaultTerminal holds the default value on creation for the terminal field.
	advicesession.DefaultTerminal = advicesessionDescTerminal.Default.(bool)
	// advicesessionDescLastActivity is the schema descriptor for last_activity field.
	advicesessionDescLastActivity := advicesessionFields[5].Descriptor()
	// advicesession.DefaultLastActivity holds the default value on creation for the last_activity field.
	advicesession.DefaultLastActivity = advicesessionDescLastActivity.Default.(func() time.Time)
	// advicesession.UpdateDefaultLastActivity holds the default value on update for the last_activity field.
	advicesession.UpdateDefaultLastActivity = advicesessionDescLastActivity.UpdateDefault.(func() time.Time)
	chateventMixin := schema.ChatEvent{}.Mixin()
	chateventMixinFields0 := chateventMixin[0].Fields()
	_ = chateventMixinFields0
	chateventFields := schema.ChatEvent{}.Fields()
	_ = chateventFields
	// chateventDescTimestamp is the schema descriptor for timestamp field.
	chateventDescTimestamp := chateventMixinFields0[1].Descriptor()
	// chatevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	chatevent.DefaultTimestamp = chateventDescTimestamp.Default.(func() time.Time)
	// chateventDescMatchedPattern is the schema descriptor for matched_pattern field.
	chateventDescMatchedPattern := chateventFields[2].Descriptor()
	// chatevent.DefaultMatchedPattern holds the default value on creation for the matched_pattern field.
	chatevent.DefaultMatchedPattern = chateventDescMatchedPattern.Default.(string)
	// chateventDescConfidence is the schema descriptor for confidence field.
	chateventDescConfidence := chateventFields[3].Descriptor()
	// chatevent.DefaultConfidence holds the default value on creation for the confidence field.
	chatevent.DefaultConfidence = chateventDescConfidence.Default.(float64)
	// chateventDescReplySource is the schema descriptor for reply_source field.
	chateventDescReplySource := chateventFields[4].Descriptor()
	// chatevent.DefaultReplySource holds the default value on creation for the reply_source field.
	chatevent.DefaultReplySource = chateventDescReplySource.Default.(string)
	// chateventDescHandlerFailed is the schema descriptor for handler_failed field.
	chateventDescHandlerFailed := chateventFields[5].Descriptor()
	// chatevent.DefaultHandlerFailed holds the default value on creation for the handler_failed field.
	chatevent.DefaultHandlerFailed = chateventDescHandlerFailed.Default.(bool)
	// chateventDescErrorMessage is the schema descriptor for error_message field.
	chateventDescErrorMessage := chateventFields[6].Descriptor()
	// chatevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	chatevent.DefaultErrorMessage = chateventDescErrorMessage.Default.(string)
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescDescription is the schema descriptor for description field.
	courseDescDescription := courseFields[2].Descriptor()
	// course.DefaultDescription holds the default value on creation for the description field.
	course.DefaultDescription = courseDescDescription.Default.(string)
	// courseDescCategory is the schema descriptor for category field.
	courseDescCategory := courseFields[3].Descriptor()
	// course.DefaultCategory holds the default value on creation for the category field.
	course.DefaultCategory = courseDescCategory.Default.(string)
	// courseDescPrice is the schema descriptor for price field.
	courseDescPrice := courseFields[5].Descriptor()
	// course.DefaultPrice holds the default value on creation for the price field.
	course.DefaultPrice = courseDescPrice.Default.(float64)
	// courseDescDurationMinutes is the schema descriptor for duration_minutes field.
	courseDescDurationMinutes := courseFields[7].Descriptor()
	// course.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	course.DefaultDurationMinutes = courseDescDurationMinutes.Default.(int)
	// courseDescEnrolledCount is the schema descriptor for enrolled_count field.
	courseDescEnrolledCount := courseFields[8].Descriptor()
	// course.DefaultEnrolledCount holds the default value on creation for the enrolled_count field.
	course.DefaultEnrolledCount = courseDescEnrolledCount.Default.(int)
	// courseDescRatingAverage is the schema descriptor for rating_average field.
	courseDescRatingAverage := courseFields[9].Descriptor()
	// course.DefaultRatingAverage holds the default value on creation for the rating_average field.
	course.DefaultRatingAverage = courseDescRatingAverage.Default.(float64)
	// courseDescPublished is the schema descriptor for published field.
	courseDescPublished := courseFields[10].Descriptor()
	// course.DefaultPublished holds the default value on creation for the published field.
	course.DefaultPublished = courseDescPublished.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
}
