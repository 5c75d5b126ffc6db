// Package ass renders Advanced SubStation Alpha scripts for scrolling
// comments.
//
// It owns the two value encodings the format needs (H:MM:SS.CC timecodes and
// &HAABBGGRR colour literals) and the script writer that assembles the
// [Script Info], [V4+ Styles] and [Events] sections. Rendering is
// deterministic: identical input always yields identical bytes, so callers
// can snapshot the output.
package ass
