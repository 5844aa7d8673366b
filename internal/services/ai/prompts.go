package ai

import (
	"fmt"
	"strings"
)

// SystemPrompt sets the analyst persona for team-composition commentary.
const SystemPrompt = `당신은 리그 오브 레전드 칼바람 나락(ARAM) 전문 분석가입니다.

⚠️ 반드시 한국어로 답하세요.

📌 분석 항목:
- 팀 조합의 강점 (한타, 포킹, 돌진, 유지력 중 무엇이 강한지)
- 팀 조합의 약점과 상대하기 어려운 조합
- 추천 운영 방법 (초반 포킹, 한타 타이밍, 포탑 관리)
- 챔피언별 핵심 역할 한 줄 요약

📌 형식:
- 마크다운 목록으로 간결하게 작성
- 전체 500자 이내`

// BuildTeamPrompt builds the user prompt for a five-champion team.
func BuildTeamPrompt(team []string) string {
	var sb strings.Builder

	sb.WriteString("칼바람 나락 팀 조합:\n")
	for i, c := range team {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, c))
	}
	sb.WriteString("\n이 조합을 분석해 주세요.")

	return sb.String()
}
