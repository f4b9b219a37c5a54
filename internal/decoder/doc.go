// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package decoder validates NMEA 0183 sentences and merges the RMC, GGA, GSA, GSV and
// GLL sentence types into a running fix state.
//
// A Decoder is stateless apart from its configuration. The FixState is owned by the
// caller and handed to every Decode call, which updates only the fields the decoded
// sentence carries. Fields written by earlier sentences are left untouched.
package decoder
