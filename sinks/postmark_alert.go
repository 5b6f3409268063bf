package sinks

import (
	"context"
	"fmt"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/loghandler"
)

// PostmarkAlert wraps inner, leaving every callback untouched except
// ProcessIErr: it still delegates to inner's own ProcessIErr (if any) and
// counts the results that survive it as errors; when that count reaches
// param.IErrMax (the point at which the loop gives up with
// ErrIErrBudgetExceeded), it emails operator via client once before
// returning, so an operator learns a handler is about to die rather than
// just finding an empty log stream.
// Grounded on dmitrymomot-foundation's mrz1836/postmark dependency.
func PostmarkAlert(inner loghandler.Descriptor, client *postmark.Client, from, operator string) loghandler.Descriptor {
	wrapped := inner
	survived := 0
	wrapped.ProcessIErr = func(err loghandler.Chain, param *loghandler.Param) loghandler.Chain {
		result := err
		if inner.ProcessIErr != nil {
			result = inner.ProcessIErr(err, param)
		}
		if result.IsOK() || result.IsLoopExit() {
			return result
		}
		survived++
		if param != nil && survived == param.IErrMax {
			_, _ = client.SendEmail(context.Background(), postmark.Email{
				From:     from,
				To:       operator,
				Subject:  fmt.Sprintf("loghandler %q reporting errors", inner.Name),
				TextBody: result.Error(),
			})
		}
		return result
	}
	return wrapped
}
