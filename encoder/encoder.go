package encoder

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// BytesPerPixel is the size of one RGBA pixel as read back from the framebuffer.
const BytesPerPixel = 4

// frameBuffer is the number of frames that may wait for ffmpeg before new ones are dropped.
const frameBuffer = 8

var ErrInvalidSize = errors.New("recording size must be positive")

// Recorder pipes raw RGBA frames into an ffmpeg process that writes an H.264 file.
type Recorder struct {
	path      string
	width     int
	height    int
	frames    chan []byte
	done      chan error
	closed    bool
	dropped   int
	frameSize int
}

// OutputName returns the capture file name for a recording started at t.
func OutputName(t time.Time) string {
	return "capture-" + t.Format("20060102-150405") + ".mp4"
}

// buildCommand describes the ffmpeg invocation. Frames arrive bottom-up from
// glReadPixels, so they are flipped; libx264 with yuv420p needs even dimensions.
func buildCommand(path string, width, height, fps int, input io.Reader) *ffmpeg.Stream {
	inputArgs := ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", width, height),
		"framerate": fmt.Sprintf("%d", fps),
	}
	outputArgs := ffmpeg.KwArgs{
		"vf":      "vflip,scale=trunc(iw/2)*2:trunc(ih/2)*2",
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
	}
	return ffmpeg.Input("pipe:", inputArgs).
		Output(path, outputArgs).
		OverWriteOutput().WithInput(input).ErrorToStdOut()
}

// NewRecorder starts ffmpeg writing to path. Frames must be width*height RGBA.
func NewRecorder(path string, width, height, fps int) (*Recorder, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	pipeReader, pipeWriter := io.Pipe()
	cmd := buildCommand(path, width, height, fps, pipeReader)

	r := &Recorder{
		path:      path,
		width:     width,
		height:    height,
		frames:    make(chan []byte, frameBuffer),
		done:      make(chan error, 1),
		frameSize: width * height * BytesPerPixel,
	}

	errc := make(chan error, 1)
	go func() {
		err := cmd.Run()
		// unblock the writer if ffmpeg exits early
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	go func() {
		var writeErr error
		for frame := range r.frames {
			if writeErr != nil {
				continue
			}
			if _, err := pipeWriter.Write(frame); err != nil {
				writeErr = fmt.Errorf("failed to write frame to ffmpeg: %w", err)
				log.Printf("Recording to %s failed: %v", path, err)
			}
		}
		pipeWriter.Close()
		runErr := <-errc
		if runErr != nil {
			r.done <- fmt.Errorf("ffmpeg exited: %w", runErr)
			return
		}
		r.done <- writeErr
	}()

	log.Printf("Recording %dx%d at %d fps to %s", width, height, fps, path)
	return r, nil
}

// Path returns the output file.
func (r *Recorder) Path() string { return r.path }

// Size returns the frame dimensions the recorder accepts.
func (r *Recorder) Size() (int, int) { return r.width, r.height }

// Dropped returns the number of frames rejected so far.
func (r *Recorder) Dropped() int { return r.dropped }

// SendFrame queues a frame without blocking. It reports false when the frame
// was dropped because the queue is full, the size is wrong, or the recorder is closed.
func (r *Recorder) SendFrame(pixels []byte) bool {
	if r.closed || len(pixels) != r.frameSize {
		r.dropped++
		return false
	}
	select {
	case r.frames <- pixels:
		return true
	default:
		r.dropped++
		return false
	}
}

// Close flushes the queued frames and waits for ffmpeg to finish.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	close(r.frames)
	err := <-r.done
	if r.dropped > 0 {
		log.Printf("Recording to %s finished, %d frames dropped", r.path, r.dropped)
	} else {
		log.Printf("Recording to %s finished", r.path)
	}
	return err
}
