
// Package fuzztests houses Go fuzz harnesses for the front end and the lint
// pass (source -> lexer -> parser -> rules). They guard against panics and
// hangs on arbitrary input.
//
// Назначение: прогонять произвольные байты через FileSet, лексер, парсер и
// driver.LintSource.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.

package fuzztests
