package tokenizer

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"

	"manualqa/pkg/logger_i"
)

var (
	once     sync.Once
	instance *Counter
	initErr  error
)

// Counter counts cl100k_base subword tokens. Only used for size-bounding
// decisions, never for actual tokenization of model input.
type Counter struct {
	encoding *tiktoken.Tiktoken
}

func Get() (*Counter, error) {
	once.Do(func() {
		logger := logger_i.NewLogger("Tokenizer")
		//offline BPE dictionary - no network fetch on first use
		tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())

		encoding, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			logger.Error("could not load cl100k_base encoding", "error", err)
			initErr = err
			return
		}
		instance = &Counter{encoding: encoding}
		logger.Info("cl100k_base tokenizer ready")
	})
	return instance, initErr
}

func (c *Counter) Count(text string) int {
	return len(c.encoding.Encode(text, nil, nil))
}
