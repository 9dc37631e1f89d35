package runner

import (
	"context"

	"github.com/mrjoshuak/matchexport"
)

// ConvertTask returns a Task that extracts the job's input page and exports
// it to the job's output path.
func ConvertTask(opts ...matchexport.Option) Task {
	return func(ctx context.Context, job Job) (int, error) {
		list, err := matchexport.Convert(ctx, job.InputPath, job.OutputPath, opts...)
		if err != nil {
			return 0, err
		}
		return len(list.Records), nil
	}
}
