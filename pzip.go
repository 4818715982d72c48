package pzip

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/suvikristiin/CT30A3370-projects/compress"
	"github.com/suvikristiin/CT30A3370-projects/endian"
	"github.com/suvikristiin/CT30A3370-projects/errs"
	"github.com/suvikristiin/CT30A3370-projects/format"
	"github.com/suvikristiin/CT30A3370-projects/internal/aggregate"
	"github.com/suvikristiin/CT30A3370-projects/internal/hash"
	"github.com/suvikristiin/CT30A3370-projects/internal/metrics"
	"github.com/suvikristiin/CT30A3370-projects/internal/partition"
	"github.com/suvikristiin/CT30A3370-projects/internal/report"
	"github.com/suvikristiin/CT30A3370-projects/internal/worker"
	"github.com/suvikristiin/CT30A3370-projects/rle"
)

// Result is the fully serialized output of a run.
type Result struct {
	// Data is the record stream, wrapped by the outer codec if one is set.
	Data  []byte
	Stats Stats

	segments []report.SegmentRow
}

// pipeline carries the per-run state shared by the stages.
type pipeline struct {
	cfg     *Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	engine  endian.EndianEngine
	filter  *rle.ByteFilter
	start   time.Time
}

func newPipeline(opts ...Option) (*pipeline, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	engine, err := endian.ForOrder(cfg.byteOrder)
	if err != nil {
		return nil, err
	}

	filter, err := rle.NewByteFilter(cfg.bytePolicy)
	if err != nil {
		return nil, err
	}

	p := &pipeline{
		cfg:    cfg,
		logger: cfg.logger,
		engine: engine,
		filter: filter,
		start:  time.Now(),
	}
	if cfg.metricsFile != "" {
		p.metrics = metrics.New()
	}

	return p, nil
}

// Compress reads paths in order, encodes their concatenation and writes the
// result to w with a single Write call.
//
// The first input that cannot be opened or sized aborts the run before any
// encoding starts. Nothing is written to w unless every stage succeeded,
// including the metrics file and segment report, which are written first and
// removed again if the write to w fails.
//
// Parameters:
//   - ctx: checked between input files and before workers start
//   - paths: input files, at least one
//   - w: destination of the encoded stream
//   - opts: pipeline options
//
// Returns:
//   - Stats: summary of the run
//   - error: errs.ErrNoInputFiles, an input error naming the path, a worker
//     error, errs.ErrVerifyMismatch or errs.ErrWriteOutput
func Compress(ctx context.Context, paths []string, w io.Writer, opts ...Option) (Stats, error) {
	if len(paths) == 0 {
		return Stats{}, errs.ErrNoInputFiles
	}

	p, err := newPipeline(opts...)
	if err != nil {
		return Stats{}, err
	}

	loadStart := time.Now()
	loader := aggregate.Loader{MaxBytes: p.cfg.maxInputBytes, Logger: p.logger}
	buf, err := loader.Load(ctx, paths)
	if err != nil {
		return Stats{}, err
	}
	p.metrics.ObserveStage("load", time.Since(loadStart))

	res, err := p.encode(ctx, buf)
	if err != nil {
		return Stats{}, err
	}

	if err := p.writeSideOutputs(res); err != nil {
		return Stats{}, err
	}

	if _, err := w.Write(res.Data); err != nil {
		p.removeSideOutputs()
		return res.Stats, fmt.Errorf("%w: %w", errs.ErrWriteOutput, err)
	}
	p.logSummary(res.Stats)

	return res.Stats, nil
}

// Encode encodes data that is already in memory.
//
// data must not be modified until Encode returns. The returned Result owns
// its Data.
func Encode(ctx context.Context, data []byte, opts ...Option) (*Result, error) {
	p, err := newPipeline(opts...)
	if err != nil {
		return nil, err
	}

	res, err := p.encode(ctx, aggregate.NewBuffer(data))
	if err != nil {
		return nil, err
	}

	if err := p.writeSideOutputs(res); err != nil {
		return nil, err
	}
	p.logSummary(res.Stats)

	return res, nil
}

// Decompress expands a record stream from r into w and returns the number of
// bytes written.
//
// Only WithByteOrder and WithCompression affect decoding; they must match the
// options the stream was produced with. A stream that ends inside a record
// yields errs.ErrTruncatedRecord after everything before it was written.
func Decompress(r io.Reader, w io.Writer, opts ...Option) (int64, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return 0, err
	}

	engine, err := endian.ForOrder(cfg.byteOrder)
	if err != nil {
		return 0, err
	}

	if cfg.codec == format.CompressionNone {
		return rle.NewDecoder(r, engine).Expand(w)
	}

	codec, err := compress.GetCodec(cfg.codec)
	if err != nil {
		return 0, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read compressed input: %w", err)
	}

	records, err := codec.Decompress(data)
	if err != nil {
		return 0, err
	}

	return rle.Expand(records, engine, w)
}

func (p *pipeline) encode(ctx context.Context, buf *aggregate.Buffer) (*Result, error) {
	data := buf.Bytes()
	segments := partition.Plan(buf.Len(), p.cfg.workers)
	if err := partition.Validate(segments, buf.Len()); err != nil {
		return nil, err
	}

	runs, durations, err := p.encodeSegments(ctx, data, segments)
	if err != nil {
		return nil, err
	}

	mergeStart := time.Now()
	merger := rle.NewMerger(p.cfg.maxRunLength, p.filter, mergeHint(runs))
	merger.OnDrop(func(value byte) {
		p.logger.Warn("dropping bytes outside the ASCII range", "value", report.FormatValue(value))
	})

	rows := make([]report.SegmentRow, 0, len(segments))
	for i, seq := range runs {
		before := merger.SeamsMerged()
		merger.Append(seq)
		rows = append(rows, segmentRow(segments[i], seq, durations[i], merger.SeamsMerged() > before))
	}
	merged := merger.Runs()
	p.metrics.ObserveStage("merge", time.Since(mergeStart))

	writer := rle.NewRecordWriter(p.engine)
	defer writer.Release()
	writer.WriteRuns(merged)

	stats := Stats{
		InputBytes:   int64(len(data)),
		RecordBytes:  int64(writer.Len()),
		Runs:         writer.Records(),
		Workers:      len(segments),
		SeamsMerged:  merger.SeamsMerged(),
		DroppedBytes: merger.Dropped(),
		Codec:        p.cfg.codec,
	}

	out, err := p.applyCodec(writer.Bytes())
	if err != nil {
		return nil, err
	}
	stats.OutputBytes = int64(len(out))

	if p.cfg.verify {
		verifyStart := time.Now()
		digest, err := p.verify(data, out)
		if err != nil {
			return nil, err
		}
		stats.Digest = digest
		p.metrics.ObserveStage("verify", time.Since(verifyStart))
	}

	stats.Duration = time.Since(p.start)

	return &Result{Data: out, Stats: stats, segments: rows}, nil
}

// encodeSegments runs one encoder per segment and waits for all of them.
// Each worker writes only its own slots.
func (p *pipeline) encodeSegments(ctx context.Context, data []byte, segments []partition.Segment) ([]rle.Sequence, []time.Duration, error) {
	runs := make([]rle.Sequence, len(segments))
	durations := make([]time.Duration, len(segments))

	encodeStart := time.Now()
	err := worker.ForkJoin(ctx, len(segments), func(i int) error {
		seg := segments[i]
		p.logger.Debug("segment started", "segment", seg.Index, "start", seg.Start, "end", seg.End)

		start := time.Now()
		seq, err := rle.EncodeSegment(data, seg.Start, seg.End, p.cfg.maxRunLength)
		if err != nil {
			return fmt.Errorf("segment %d: %w", seg.Index, err)
		}
		durations[i] = time.Since(start)
		runs[i] = seq

		p.metrics.ObserveSegment(durations[i])
		p.logger.Debug("segment finished", "segment", seg.Index, "runs", len(seq), "duration", durations[i])

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	for i, seq := range runs {
		if seq == nil {
			return nil, nil, fmt.Errorf("%w: segment %d", errs.ErrIncompleteSegment, i)
		}
	}
	p.metrics.ObserveStage("encode", time.Since(encodeStart))

	return runs, durations, nil
}

// applyCodec returns a copy of records owned by the caller, compressed when
// an outer codec is configured.
func (p *pipeline) applyCodec(records []byte) ([]byte, error) {
	if p.cfg.codec == format.CompressionNone {
		return bytes.Clone(records), nil
	}

	out, cstats, err := compress.CompressMeasured(p.cfg.codec, records)
	if err != nil {
		return nil, err
	}
	p.metrics.ObserveStage("compress", cstats.Duration)
	p.logger.Debug("compressed record stream",
		"codec", cstats.Algorithm.String(),
		"records_bytes", cstats.OriginalSize,
		"compressed_bytes", cstats.CompressedSize,
		"savings_pct", cstats.SpaceSavings(),
	)

	return out, nil
}

// verify decodes out and compares it with the bytes of input that the byte
// policy keeps.
func (p *pipeline) verify(input, out []byte) (uint64, error) {
	records := out
	if p.cfg.codec != format.CompressionNone {
		codec, err := compress.GetCodec(p.cfg.codec)
		if err != nil {
			return 0, err
		}
		if records, err = codec.Decompress(out); err != nil {
			return 0, fmt.Errorf("%w: %w", errs.ErrVerifyMismatch, err)
		}
	}

	got := hash.NewDigest()
	if _, err := rle.Expand(records, p.engine, got); err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrVerifyMismatch, err)
	}

	want, wantLen := expectedDigest(input, p.filter)
	if got.Len() != wantLen || got.Sum64() != want {
		return 0, fmt.Errorf("%w: decoded %d bytes with digest %016x, want %d bytes with digest %016x",
			errs.ErrVerifyMismatch, got.Len(), got.Sum64(), wantLen, want)
	}

	return want, nil
}

// writeSideOutputs records the run in the metrics registry and writes the
// optional segment report and metrics file.
func (p *pipeline) writeSideOutputs(res *Result) error {
	s := res.Stats
	p.metrics.ObserveResult(int(s.InputBytes), int(s.OutputBytes), s.Runs, s.SeamsMerged, s.DroppedBytes, s.Workers)

	if p.cfg.segmentReport != "" {
		if err := report.WriteFile(p.cfg.segmentReport, res.segments); err != nil {
			return err
		}
	}

	if err := p.metrics.WriteFile(p.cfg.metricsFile); err != nil {
		p.removeSideOutputs()
		return fmt.Errorf("write metrics: %w", err)
	}

	return nil
}

// removeSideOutputs deletes side outputs of a run that did not complete.
func (p *pipeline) removeSideOutputs() {
	for _, path := range []string{p.cfg.segmentReport, p.cfg.metricsFile} {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			p.logger.Warn("cannot remove side output", "path", path, "error", err)
		}
	}
}

func (p *pipeline) logSummary(s Stats) {
	p.logger.Info("compression finished",
		"input_bytes", s.InputBytes,
		"output_bytes", s.OutputBytes,
		"runs", s.Runs,
		"workers", s.Workers,
		"seams_merged", s.SeamsMerged,
		"dropped_bytes", s.DroppedBytes,
		"duration", s.Duration,
	)
	if s.DroppedBytes > 0 {
		p.logger.Warn("input contained bytes outside the ASCII range", "dropped_bytes", s.DroppedBytes)
	}
}

// expectedDigest hashes the bytes of data that filter allows, in order.
func expectedDigest(data []byte, filter *rle.ByteFilter) (uint64, int64) {
	if filter == nil {
		return hash.Sum(data), int64(len(data))
	}

	d := hash.NewDigest()
	start := 0
	for i, b := range data {
		if filter.Allows(b) {
			continue
		}
		if start < i {
			_, _ = d.Write(data[start:i])
		}
		start = i + 1
	}
	if start < len(data) {
		_, _ = d.Write(data[start:])
	}

	return d.Sum64(), d.Len()
}

func mergeHint(runs []rle.Sequence) int {
	n := 0
	for _, seq := range runs {
		n += len(seq)
	}

	return n
}

func segmentRow(seg partition.Segment, seq rle.Sequence, d time.Duration, seamMerged bool) report.SegmentRow {
	row := report.SegmentRow{
		Index:      seg.Index,
		Start:      seg.Start,
		End:        seg.End,
		Runs:       len(seq),
		SeamMerged: seamMerged,
		DurationUs: d.Microseconds(),
	}
	if len(seq) > 0 {
		row.FirstValue = report.FormatValue(seq[0].Value)
		row.LastValue = report.FormatValue(seq[len(seq)-1].Value)
	}

	return row
}
