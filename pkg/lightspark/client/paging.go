package client

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/diwise/lightspark-go/pkg/lightspark/operations"
	"github.com/diwise/lightspark-go/pkg/lightspark/types"
)

// PageFunc returns the operation fetching the page after cursor. A nil
// cursor asks for the first page.
type PageFunc[E any] func(cursor *string) (*operations.Operation[types.Connection[E]], error)

// FetchAll pages through a connection and calls callback for every entity.
// It stops when the server reports that there is no next page and returns
// the number of entities seen. A server that hands back the cursor it was
// asked to page after is an error.
func FetchAll[E any](ctx context.Context, c Client, pages PageFunc[E], callback func(e E)) (count int, err error) {
	logger := logging.GetFromContext(ctx)

	var cursor *string

	for {
		var op *operations.Operation[types.Connection[E]]
		var page *types.Connection[E]

		op, err = pages(cursor)
		if err != nil {
			err = fmt.Errorf("failed to build page request: %w", err)
			return
		}

		page, err = Execute(ctx, c, op)
		if err != nil {
			return
		}

		if page == nil {
			return
		}

		for _, e := range page.Entities {
			callback(e)
		}

		count += len(page.Entities)

		if !page.PageInfo.NextPage() {
			break
		}

		if page.PageInfo.EndCursor == nil {
			logger.Warn("connection reports a next page but has no end cursor", "operation", op.Name)
			break
		}

		if cursor != nil && *cursor == *page.PageInfo.EndCursor {
			logger.Warn("connection returned the cursor it was asked to page after", "operation", op.Name, "cursor", *cursor)
			err = fmt.Errorf("%s returned end cursor %q twice in a row", op.Name, *cursor)
			return
		}

		cursor = page.PageInfo.EndCursor
	}

	return
}
