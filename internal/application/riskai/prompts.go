package riskai

import (
	"encoding/json"
	"fmt"
)

// Prompts de los módulos de IA. Cada uno fija el contrato de salida:
// un único objeto JSON con el esquema exacto, sin markdown ni prosa.
// La entrada del usuario se embebe textual como JSON identado.

const kriPromptTemplate = `Respond ONLY with valid JSON.
No markdown. No explanation.

Return JSON:
{
  "extractedContext": {},
  "risks": [
    {
      "riskCategory": "",
      "riskDomain": "",
      "riskTitle": "",
      "riskDescription": "",
      "impact": 1,
      "likelihood": 1,
      "riskScore": 1,
      "keyVulnerability": "",
      "businessJustification": "",
      "mitigationRecommendation": ""
    }
  ]
}

Rules:
- impact and likelihood must be integers from 1 (low) to 5 (high).
- riskScore must be calculated as: impact x likelihood.
- Base all risks strictly on the provided business input.

Business Input:
%s
`

const siteRiskPromptTemplate = `Respond ONLY with strictly valid JSON.
Do NOT include markdown, comments, headings, or any explanatory text outside the JSON.

Analyze the provided input data and infer realistic site, building, operational, and compliance context.

Return a single JSON object in the exact structure below and do not change key names or data types:

{
  "extractedContext": {
    "siteName": "",
    "siteType": "",
    "location": "",
    "buildingProfile": "",
    "dailyOccupancy": 0,
    "criticalOperations": false
  },
  "risks": [
    {
      "riskCategory": "",
      "riskDescription": "",
      "severity": 1,
      "likelihood": 1,
      "riskScore": 1,
      "mitigationRecommendation": ""
    }
  ],
  "overallRiskScore": 1,
  "complianceStatus": ""
}

Risk generation requirements:
- Include multiple risks, covering both high-risk and low-risk scenarios.
- Risk descriptions must be 2-3 complete lines explaining what the risk is, why it exists in this context, and its potential impact.
- Severity and likelihood must be integers from 1 (low) to 5 (high).
- riskScore must be calculated as: severity x likelihood.
- Mitigation recommendations must be practical, specific, and actionable.

Overall assessment rules:
- overallRiskScore should realistically reflect the combined risk exposure (not a simple average).
- complianceStatus must be one of: "Compliant", "Partially Compliant", or "Non-Compliant".
- Do not fabricate unrelated risks. Base all analysis strictly on the provided input data.

Site Input:
%s
`

const bcmPromptTemplate = `You are an ISO 22301 BCM expert.

Tasks:
1. Extract BCM policy clauses (ISO-style numbering if possible)
2. Identify gaps vs ISO 22301 expectations
3. Generate improvement suggestions
4. Provide compliance summary

Respond ONLY with valid JSON:

{
  "extractedClauses": [
    {
      "clause": "5.3",
      "existingText": "",
      "requirementText": "",
      "questions": []
    }
  ],
  "gapAnalysis": {
    "summary": "",
    "totalClauses": 0,
    "gapsFound": 0,
    "details": [
      {
        "clause": "",
        "requirement": "",
        "present": true,
        "evidence": "",
        "gapSeverity": "Low",
        "recommendation": ""
      }
    ]
  },
  "regeneratedPolicy": {
    "clauses": [
      {
        "clause": "",
        "existingText": "",
        "newText": "",
        "improvementSuggestions": []
      }
    ]
  }
}

Policy Text:
%s
`

// buildKRIPrompt embebe la entrada (texto libre o cuestionario) como JSON.
func buildKRIPrompt(input any) (string, error) {
	payload, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return "", fmt.Errorf("riskai: serializar entrada KRI: %w", err)
	}
	return fmt.Sprintf(kriPromptTemplate, payload), nil
}

// buildSiteRiskPrompt embebe la entrada del sitio como JSON.
func buildSiteRiskPrompt(input any) (string, error) {
	payload, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return "", fmt.Errorf("riskai: serializar entrada site risk: %w", err)
	}
	return fmt.Sprintf(siteRiskPromptTemplate, payload), nil
}

// buildBCMPrompt embebe el texto de la política tal cual.
func buildBCMPrompt(policyText string) string {
	return fmt.Sprintf(bcmPromptTemplate, policyText)
}
