package i18n

import "context"

type ctxKey string

const ctxKeyTranslator ctxKey = "translator"

// WithTranslator stores the request translator in ctx.
func WithTranslator(ctx context.Context, t Translator) context.Context {
	return context.WithValue(ctx, ctxKeyTranslator, t)
}

// FromContext returns the translator stored by WithTranslator.
func FromContext(ctx context.Context) (Translator, bool) {
	t, ok := ctx.Value(ctxKeyTranslator).(Translator)
	return t, ok
}
