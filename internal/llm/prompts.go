package llm

import "fmt"

const contentSystemPrompt = "You are an expert educational content creator. Provide comprehensive, accurate " +
	"educational content based on video transcripts. Always respond with valid JSON."

const tutorSystemPrompt = "You are a helpful AI tutor. Provide clear, educational responses based on video content."

func contentPrompt(transcript, title string) string {
	return fmt.Sprintf(`Analyze the following YouTube video transcript and provide:

1. COMPREHENSIVE SUMMARY (300+ words):
- Key learning objectives and main concepts
- Prerequisites or background knowledge needed
- Step-by-step breakdown of important processes
- Real-world applications and examples
- Key insights and takeaways
- Follow-up topics for further learning

2. CONCEPTUAL QUESTIONS (10 questions):
Create 10 multiple-choice questions covering different cognitive levels:
- 3 Conceptual questions (understanding definitions and basic concepts)
- 3 Application questions (applying knowledge to new situations)
- 2 Analysis questions (breaking down complex ideas)
- 2 Synthesis questions (combining concepts creatively)

Each question should have:
- Clear question text
- 4 multiple choice options (A, B, C, D)
- Correct answer indicated as the zero-based index of the option
- Brief explanation of why the answer is correct
- Difficulty level (Beginner/Intermediate/Advanced)
- Question type (conceptual/application/analysis/synthesis)

Video Title: %s

Transcript:
%s

Format your response as valid JSON with this structure:
{
    "summary": {
        "main_points": ["point1", "point2"],
        "key_concepts": ["concept1", "concept2"],
        "prerequisites": ["prereq1", "prereq2"],
        "applications": ["app1", "app2"],
        "detailed_explanation": "detailed 300+ word explanation",
        "follow_up_topics": ["topic1", "topic2"]
    },
    "questions": [
        {
            "question": "Question text",
            "options": ["A. Option 1", "B. Option 2", "C. Option 3", "D. Option 4"],
            "correct_answer": 0,
            "explanation": "Why this answer is correct",
            "difficulty": "Beginner",
            "type": "conceptual"
        }
    ]
}`, title, transcript)
}

func answerPrompt(question, transcript, title string) string {
	return fmt.Sprintf(`You are an AI tutor helping a student understand a YouTube video. Based on the transcript provided, answer the student's question clearly and comprehensively.

Video Title: %s
Student Question: %s

Video Transcript:
%s

Please provide:
1. A direct answer to the question
2. Relevant context from the video
3. Additional explanations if needed
4. Related concepts the student should understand

If the question cannot be answered from the transcript, politely explain that and suggest what information would be needed.`, title, question, transcript)
}
