package script

const zshScript = `#compdef git-cola
# zsh completion for git-cola
# generated by cola-complete; do not edit by hand

_git_cola() {
    local -a pairs
    local line
    for line in ${(f)"$(cola-complete query --cwd "$PWD" -- "${words[@]:1}" 2>/dev/null)"}; do
        pairs+=("${line/$'\t'/:}")
    done
    (( ${#pairs} )) && _describe 'git-cola' pairs
    _default
}

_git_cola "$@"
`

func renderZsh() string {
	return zshScript
}
