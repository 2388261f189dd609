package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baditaflorin/go_case_convert/internal/core/domain"
	"github.com/baditaflorin/go_case_convert/pkg/camel"
	"github.com/baditaflorin/go_case_convert/pkg/dot"
	"github.com/baditaflorin/go_case_convert/pkg/kebab"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB
	DefaultConcurrency    = 0               // 0 means use GOMAXPROCS
)

// Case converters shared across requests
var (
	camelConverter *camel.Converter
	dotConverter   *dot.Converter
	kebabConverter *kebab.Converter

	// Logger instance
	logger l.Logger
)

// Request represents a case conversion request
type Request struct {
	Input string `json:"input"`
}

// Response represents a case conversion response
type Response struct {
	Output string `json:"output"`
	Style  string `json:"style"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error"`
	ErrorKind string `json:"error_kind,omitempty"`
}

func main() {
	// Parse command-line flags
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	// Set up logger
	var err error
	logger, err = createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting case conversion HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
	)

	// Initialize converters
	initConverters(*warmUp)

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               requestHandler,
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	// Start server
	logger.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// initConverters initializes the shared case converters
func initConverters(warmUp bool) {
	var err error

	// The camel and dot converters share the tokenizer pipeline; use the
	// optimized tokenizer for server workloads.
	camelOpts := []camel.Option{
		camel.WithLogger(logger),
		camel.WithOptimizedTokenizer(),
	}
	if warmUp {
		camelOpts = append(camelOpts, camel.WithWarmUp(true))
	}

	camelConverter, err = camel.New(camelOpts...)
	if err != nil {
		logger.Error("Failed to initialize camelCase converter", "error", err)
		os.Exit(1)
	}

	dotOpts := []dot.Option{
		dot.WithLogger(logger),
		dot.WithOptimizedTokenizer(),
	}
	if warmUp {
		dotOpts = append(dotOpts, dot.WithWarmUp(true))
	}

	dotConverter, err = dot.New(dotOpts...)
	if err != nil {
		logger.Error("Failed to initialize dot.case converter", "error", err)
		os.Exit(1)
	}

	kebabConverter, err = kebab.New(kebab.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to initialize kebab-case converter", "error", err)
		os.Exit(1)
	}

	logger.Info("Case converters initialized successfully",
		"warm_up", warmUp,
	)
}

// requestHandler is the main fasthttp request handler
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	// Set common headers
	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "CaseConvertServer")

	// Route based on path
	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/v1/camel":
		handleConversion(ctx, "camel", func(input any) (string, error) {
			return camelConverter.Convert(input)
		})
	case "/v1/dot":
		handleConversion(ctx, "dot", func(input any) (string, error) {
			return dotConverter.Convert(input)
		})
	case "/v1/kebab":
		handleConversion(ctx, "kebab", func(input any) (string, error) {
			return kebabConverter.Convert(input)
		})
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found", "")
	}

	// Log request
	duration := time.Since(startTime)
	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

// handleHealthCheck responds to health check requests
func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	writeJSONResponse(ctx, response)
}

// handleConversion handles a single case conversion request
func handleConversion(ctx *fasthttp.RequestCtx, style string, convert func(any) (string, error)) {
	// Only accept POST requests
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed", "")
		return
	}

	// Parse request
	var req Request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error(), "")
		return
	}

	// Convert
	output, err := convert(req.Input)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusUnprocessableEntity)
		var kind string
		if convErr, ok := err.(*domain.ConversionError); ok {
			kind = convErr.Kind.String()
		}
		writeJSONError(ctx, err.Error(), kind)
		return
	}

	// Write response
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, Response{
		Output: output,
		Style:  style,
	})
}

// Helper functions

// writeJSONResponse writes a JSON response to the context
func writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON response", "error", err)
		writeJSONError(ctx, "Internal server error", "")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func writeJSONError(ctx *fasthttp.RequestCtx, message, kind string) {
	errResponse := ErrorResponse{
		Error:     message,
		ErrorKind: kind,
	}

	response, err := json.Marshal(errResponse)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}

// createLogger creates and configures a logger
func createLogger(logFile string) (l.Logger, error) {
	factory := l.NewStandardFactory()

	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	return factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   false,
		Metrics:     true,
	})
}
