// Copyright 2023 Hedgehog
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package syslog turns log events into RFC 3164 or RFC 5424 syslog messages and sends them to a syslog receiver
// over UDP or a Unix domain socket.
//
// A `*Logger` is created once from `Settings` and is safe for concurrent use. Every call to `Logger.Log` formats
// the message, composes the RFC 5424 structured data from the configured providers, encodes the message and hands
// it to a `Sender` on the calling goroutine. There is no queueing and no retry: encoder and transport errors are
// returned to the caller. Wrap the sender in an `AsyncSender` if logging calls must not block on the network.
//
// Use `NewCore` to plug a `*Logger` into zap.
package syslog
