// Package compress provides the codecs used to read compressed sweep logs.
//
// Bench loggers produce long plain-text captures; archiving them compressed is
// routine. Every codec here speaks the framed (streaming) variant of its
// algorithm, so files produced by the stock command line tools decode
// directly:
//
//   - Zstd: Zstandard frames (`zstd sweep.txt`)
//   - S2: S2/Snappy framed stream (`s2c sweep.txt`)
//   - LZ4: LZ4 frames (`lz4 sweep.txt`)
//   - None: pass-through
//
// Use NewReader to wrap a file for streaming decode; GetCodec exposes the
// matching Compressor for writing logs:
//
//	r, err := compress.NewReader(f, format.CompressionFromPath(path))
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
package compress
