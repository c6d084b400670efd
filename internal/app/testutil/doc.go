// Package testutil provides testing utilities for oreja.
//
// It contains:
//
//   - testify mocks for the Transcriber, Synthesizer and Recorder seams
//     (mocks.go)
//   - file fixtures for text and audio inputs (fixtures.go)
//   - an httptest server speaking the subset of the OpenAI audio API the
//     tool uses (mock_servers.go)
//
// # Usage Examples
//
//	transcriber := testutil.NewMockTranscriber()
//	transcriber.On("Transcript", mock.Anything, "/tmp/memo.wav").Return("hello", nil)
//
//	server := testutil.NewOpenAIServer(t)
//	client := openai.NewClient("sk-test", server.URL+"/v1")
package testutil
