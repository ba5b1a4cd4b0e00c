package media

import "context"

// progressWriter counts bytes passing through it and aborts once ctx is done.
type progressWriter struct {
	ctx      context.Context
	total    int64
	written  int64
	progress ProgressFunc
}

func newProgressWriter(ctx context.Context, total int64, progress ProgressFunc) *progressWriter {
	return &progressWriter{ctx: ctx, total: total, progress: progress}
}

func (w *progressWriter) Write(p []byte) (int, error) {
	if err := w.ctx.Err(); err != nil {
		return 0, err
	}
	w.written += int64(len(p))
	if w.progress != nil {
		w.progress(w.written, w.total)
	}
	return len(p), nil
}
